// Package scene holds the static dessert-plate content: the texture
// registry, the material table, the point-light rig, and the ordered
// draw sequence that renders the plate every frame.
package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"dessertscene/internal/openglhelper"
	"dessertscene/pkg/geometry"
)

// Uniforms is the subset of shader operations the scene needs. It is
// satisfied by *openglhelper.Shader and by test fakes.
type Uniforms interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, vec mgl32.Vec2)
	SetVec3(name string, vec mgl32.Vec3)
	SetMat4(name string, mat mgl32.Mat4)
}

// Drawable is anything that can issue its own draw call once the
// shader state has been set up
type Drawable interface {
	Draw()
}

// Tessellation levels for the curved meshes
const (
	cylinderSectors = 64
	sphereStacks    = 24
	sphereSectors   = 48
)

// Scene owns the dessert-plate content and renders it in a fixed order
type Scene struct {
	shader    Uniforms
	textures  *TextureRegistry
	materials *MaterialTable
	lights    LightRig
	meshes    map[MeshKind]Drawable
	items     []DrawItem
}

// New creates a scene that will drive the given shader. Prepare must
// be called once with a live GL context before Draw.
func New(shader Uniforms) *Scene {
	return &Scene{
		shader:    shader,
		textures:  NewTextureRegistry(),
		materials: DessertMaterials(),
		lights:    DessertLights(),
		meshes:    make(map[MeshKind]Drawable),
		items:     DessertPlate(),
	}
}

// Prepare loads textures, applies the light rig, and uploads the five
// primitive meshes. A texture that fails to load is logged and skipped;
// the scene renders without it.
func (s *Scene) Prepare() {
	for _, t := range dessertTextures() {
		if err := s.textures.Load(t.path, t.tag); err != nil {
			log.Printf("texture %q unavailable: %v", t.tag, err)
		}
	}
	s.textures.BindAll()

	s.lights.Apply(s.shader)

	s.meshes[MeshPlane] = uploadMesh(geometry.Plane())
	s.meshes[MeshBox] = uploadMesh(geometry.Box())
	s.meshes[MeshPrism] = uploadMesh(geometry.Prism())
	s.meshes[MeshCylinder] = uploadMesh(geometry.Cylinder(cylinderSectors))
	s.meshes[MeshSphere] = uploadMesh(geometry.Sphere(sphereStacks, sphereSectors))
}

func uploadMesh(data geometry.MeshData) *openglhelper.Mesh {
	return openglhelper.NewMesh(data.Vertices, data.Indices)
}

type textureFile struct {
	path string
	tag  string
}

func dessertTextures() []textureFile {
	return []textureFile{
		{"textures/blueberry_v1.1.jpg", "blueberry"},
		{"textures/whipped_cream2.jpg", "whipped_cream"},
		{"textures/strawberry1.jpg", "strawberry"},
		{"textures/carrot_cake.jpg", "carrot_cake"},
		{"textures/frosting1.jpg", "frosting"},
		{"textures/plate.jpg", "plate"},
		{"textures/tablecloth.jpg", "tablecloth"},
		{"textures/caramel.jpg", "caramel"},
	}
}

// setTransformations builds the model matrix as translation * rotX *
// rotY * rotZ * scale and uploads it
func (s *Scene) setTransformations(scale mgl32.Vec3, rotDeg mgl32.Vec3, pos mgl32.Vec3) {
	model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotDeg.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotDeg.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotDeg.Z()))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))

	s.shader.SetMat4("model", model)
}

// setTexture selects the texture slot for the tag. An unknown tag
// resolves to the -1 sentinel and is uploaded unchanged.
func (s *Scene) setTexture(tag string) {
	s.shader.SetBool("useTexture", true)
	s.shader.SetInt("objectTexture", int32(s.textures.FindSlot(tag)))
}

// Draw renders the full draw sequence in order. The view, projection
// and viewPosition uniforms must already be set for this frame.
func (s *Scene) Draw() {
	for _, item := range s.items {
		s.setTransformations(item.Scale, item.RotationDeg, item.Position)
		s.setTexture(item.Texture)
		s.materials.Apply(s.shader, item.Material)
		s.shader.SetVec2("uvScale", item.UVScale)

		mesh, ok := s.meshes[item.Mesh]
		if !ok {
			continue
		}
		mesh.Draw()
	}
}

// Items returns the ordered draw sequence
func (s *Scene) Items() []DrawItem {
	return s.items
}

// Textures returns the texture registry
func (s *Scene) Textures() *TextureRegistry {
	return s.textures
}

// Materials returns the material table
func (s *Scene) Materials() *MaterialTable {
	return s.materials
}

// Destroy releases the GL resources owned by the scene
func (s *Scene) Destroy() {
	for _, mesh := range s.meshes {
		if m, ok := mesh.(*openglhelper.Mesh); ok {
			m.Delete()
		}
	}
	s.textures.Destroy()
}

// check interface satisfaction at compile time
var _ Uniforms = (*openglhelper.Shader)(nil)
