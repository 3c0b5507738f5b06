package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshKind selects one of the primitive meshes prepared at setup
type MeshKind int

const (
	MeshPlane MeshKind = iota
	MeshBox
	MeshPrism
	MeshCylinder
	MeshSphere
)

// DrawItem is one entry of the ordered draw sequence: a transform, a
// texture tag, a material tag, a UV scale, and the mesh to draw.
type DrawItem struct {
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3
	Texture     string
	Material    string
	UVScale     mgl32.Vec2
	Mesh        MeshKind
}

func blueberry(size float32, pos mgl32.Vec3, uv float32) DrawItem {
	return DrawItem{
		Scale:    mgl32.Vec3{size, size, size},
		Position: pos,
		Texture:  "blueberry",
		Material: "berry",
		UVScale:  mgl32.Vec2{uv, uv},
		Mesh:     MeshSphere,
	}
}

func cream(scale, rot, pos mgl32.Vec3) DrawItem {
	return DrawItem{
		Scale:       scale,
		RotationDeg: rot,
		Position:    pos,
		Texture:     "whipped_cream",
		Material:    "cream",
		UVScale:     mgl32.Vec2{3, 3},
		Mesh:        MeshSphere,
	}
}

// drizzle returns one caramel line with its two rounded end caps. The
// caps keep the line's UV scale, matching the original sequence where
// the UV state simply carried over.
func drizzle(length, tilt float32, pos mgl32.Vec3, capSize float32, capA, capB mgl32.Vec3, uvV float32) []DrawItem {
	uv := mgl32.Vec2{1, uvV}
	return []DrawItem{
		{
			Scale:       mgl32.Vec3{length, 0.065, 0.085},
			RotationDeg: mgl32.Vec3{0, 0, tilt},
			Position:    pos,
			Texture:     "caramel",
			Material:    "caramel",
			UVScale:     uv,
			Mesh:        MeshBox,
		},
		{
			Scale:    mgl32.Vec3{capSize, 0.1, capSize},
			Position: capA,
			Texture:  "caramel",
			Material: "caramel",
			UVScale:  uv,
			Mesh:     MeshSphere,
		},
		{
			Scale:    mgl32.Vec3{capSize, 0.1, capSize},
			Position: capB,
			Texture:  "caramel",
			Material: "caramel",
			UVScale:  uv,
			Mesh:     MeshSphere,
		},
	}
}

// DessertPlate returns the draw sequence for the dessert-plate scene.
// Order matters: later items overdraw earlier ones where they overlap.
func DessertPlate() []DrawItem {
	items := []DrawItem{
		// Table surface
		{
			Scale:    mgl32.Vec3{20, 1, 15},
			Texture:  "tablecloth",
			Material: "table",
			UVScale:  mgl32.Vec2{3, 3},
			Mesh:     MeshPlane,
		},
		// Dessert plate
		{
			Scale:    mgl32.Vec3{4.2, 0.1, 4.0},
			Position: mgl32.Vec3{0, 0.1, 0},
			Texture:  "plate",
			Material: "plate",
			UVScale:  mgl32.Vec2{1, 1},
			Mesh:     MeshCylinder,
		},
		// Cake base layer
		{
			Scale:       mgl32.Vec3{1.5, 0.8, 4.0},
			RotationDeg: mgl32.Vec3{0, -10, -90},
			Position:    mgl32.Vec3{-2.55, 0.35, 0.09},
			Texture:     "carrot_cake",
			Material:    "cake",
			UVScale:     mgl32.Vec2{2, 2},
			Mesh:        MeshPrism,
		},
		// Frosting layer 1
		{
			Scale:       mgl32.Vec3{1.45, 0.095, 4.0},
			RotationDeg: mgl32.Vec3{0, -10, -90},
			Position:    mgl32.Vec3{-2.10, 0.35, 0.09},
			Texture:     "frosting",
			Material:    "frosting",
			UVScale:     mgl32.Vec2{1, 1},
			Mesh:        MeshPrism,
		},
		// Cake middle layer
		{
			Scale:       mgl32.Vec3{1.5, 0.7, 4.0},
			RotationDeg: mgl32.Vec3{0, -10, -90},
			Position:    mgl32.Vec3{-1.70, 0.35, 0.09},
			Texture:     "carrot_cake",
			Material:    "cake",
			UVScale:     mgl32.Vec2{2, 2},
			Mesh:        MeshPrism,
		},
		// Frosting layer 2
		{
			Scale:       mgl32.Vec3{1.45, 0.095, 4.0},
			RotationDeg: mgl32.Vec3{0, -10, -90},
			Position:    mgl32.Vec3{-1.30, 0.35, 0.09},
			Texture:     "frosting",
			Material:    "frosting",
			UVScale:     mgl32.Vec2{1, 1},
			Mesh:        MeshPrism,
		},
		// Cake top layer
		{
			Scale:       mgl32.Vec3{1.5, 0.6, 4.0},
			RotationDeg: mgl32.Vec3{0, -10, -90},
			Position:    mgl32.Vec3{-0.95, 0.35, 0.09},
			Texture:     "carrot_cake",
			Material:    "cake",
			UVScale:     mgl32.Vec2{2, 2},
			Mesh:        MeshPrism,
		},
		// Frosting top cap on the left side
		{
			Scale:       mgl32.Vec3{1.45, 0.10, 4.0},
			RotationDeg: mgl32.Vec3{0, -10, -90},
			Position:    mgl32.Vec3{-3.00, 0.36, 0.09},
			Texture:     "frosting",
			Material:    "frosting",
			UVScale:     mgl32.Vec2{1, 1},
			Mesh:        MeshPrism,
		},
		// Frosting back side, thin rectangle
		{
			Scale:       mgl32.Vec3{2.40, 1.60, 0.4},
			RotationDeg: mgl32.Vec3{0, -1, 0},
			Position:    mgl32.Vec3{-1.5, 0.35, -1.93},
			Texture:     "frosting",
			Material:    "frosting",
			UVScale:     mgl32.Vec2{1, 1},
			Mesh:        MeshBox,
		},
		// Whipped cream: base, middle, peak
		cream(mgl32.Vec3{0.8, 0.25, 0.7}, mgl32.Vec3{}, mgl32.Vec3{-0.85, 0.28, 2.8}),
		cream(mgl32.Vec3{0.6, 0.3, 0.55}, mgl32.Vec3{0, 15, 0}, mgl32.Vec3{-1.0, 0.4, 2.75}),
		cream(mgl32.Vec3{0.35, 0.4, 0.3}, mgl32.Vec3{10, -20, 5}, mgl32.Vec3{-1.0, 0.55, 2.7}),
		// Strawberry
		{
			Scale:       mgl32.Vec3{0.5, 0.45, 0.30},
			RotationDeg: mgl32.Vec3{-5, -45, 0},
			Position:    mgl32.Vec3{0.02, 0.35, -0.8},
			Texture:     "strawberry",
			Material:    "berry",
			UVScale:     mgl32.Vec2{2, 3.3},
			Mesh:        MeshSphere,
		},
		// Blueberries scattered around the plate
		blueberry(0.18, mgl32.Vec3{-3.35, 0.35, 0.2}, 0.6),
		blueberry(0.17, mgl32.Vec3{-3.35, 0.35, 0.7}, 0.8),
		blueberry(0.20, mgl32.Vec3{-2.8, 0.3, 2.5}, 0.9),
		blueberry(0.18, mgl32.Vec3{0.5, 0.3, 1.0}, 1.0),
		blueberry(0.17, mgl32.Vec3{0.6, 0.3, 1.45}, 1.2),
		blueberry(0.16, mgl32.Vec3{1.8, 0.3, -0.4}, 1.1),
		blueberry(0.19, mgl32.Vec3{1.5, 0.3, -1.2}, 1.25),
		blueberry(0.15, mgl32.Vec3{2.2, 0.3, -1.1}, 0.3),
		blueberry(0.15, mgl32.Vec3{-0.5, 0.3, 2.0}, 0.3),
	}

	// Caramel drizzle lines across the plate
	items = append(items, drizzle(5.6, 0.8, mgl32.Vec3{0.1, 0.18, 1.4}, 0.120,
		mgl32.Vec3{-2.7, 0.21, 1.37}, mgl32.Vec3{2.9, 0.21, 1.43}, 7.8)...)
	items = append(items, drizzle(5.4, -0.6, mgl32.Vec3{0.2, 0.18, 0.9}, 0.115,
		mgl32.Vec3{-2.5, 0.21, 0.92}, mgl32.Vec3{2.9, 0.21, 0.88}, 7.6)...)
	items = append(items, drizzle(5.2, 0.4, mgl32.Vec3{-0.1, 0.18, 0.4}, 0.112,
		mgl32.Vec3{-2.7, 0.21, 0.38}, mgl32.Vec3{2.5, 0.21, 0.42}, 7.4)...)
	items = append(items, drizzle(5.0, -0.3, mgl32.Vec3{0.3, 0.18, -0.1}, 0.110,
		mgl32.Vec3{-2.2, 0.21, -0.08}, mgl32.Vec3{2.8, 0.21, -0.12}, 7.0)...)
	items = append(items, drizzle(4.8, 0.7, mgl32.Vec3{-0.3, 0.18, -0.6}, 0.108,
		mgl32.Vec3{-2.7, 0.21, -0.64}, mgl32.Vec3{2.1, 0.21, -0.56}, 6.8)...)
	items = append(items, drizzle(4.6, -0.5, mgl32.Vec3{0.4, 0.18, -1.1}, 0.106,
		mgl32.Vec3{-1.9, 0.21, -1.08}, mgl32.Vec3{2.7, 0.21, -1.12}, 6.6)...)

	return items
}
