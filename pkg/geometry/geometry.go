// Package geometry generates the primitive meshes used by the dessert
// scene. Every generator returns interleaved vertex data in the layout
// position (3), normal (3), texture coordinates (2), plus a uint32
// index list, ready for upload through openglhelper.NewMesh.
package geometry

import (
	"github.com/chewxy/math32"
)

// FloatsPerVertex is the interleaved vertex stride in float32 units
const FloatsPerVertex = 8

// MeshData holds CPU-side mesh data before GPU upload
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the mesh
func (m MeshData) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

func (m *MeshData) addVertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, px, py, pz, nx, ny, nz, u, v)
	return idx
}

func (m *MeshData) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *MeshData) addQuad(a, b, c, d uint32) {
	m.addTriangle(a, b, c)
	m.addTriangle(a, c, d)
}

// Plane returns a flat XZ plane spanning [-1, 1] in X and Z with the
// normal pointing up. The table surface scales this to size.
func Plane() MeshData {
	var m MeshData
	a := m.addVertex(-1, 0, -1, 0, 1, 0, 0, 1)
	b := m.addVertex(-1, 0, 1, 0, 1, 0, 0, 0)
	c := m.addVertex(1, 0, 1, 0, 1, 0, 1, 0)
	d := m.addVertex(1, 0, -1, 0, 1, 0, 1, 1)
	m.addQuad(a, b, c, d)
	return m
}

// Box returns a unit cube centered at the origin with per-face normals
// and texture coordinates.
func Box() MeshData {
	var m MeshData

	// Each face: outward normal and four corners wound counter-clockwise
	// when seen from outside.
	faces := []struct {
		n       [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		var ids [4]uint32
		for i, p := range f.corners {
			ids[i] = m.addVertex(p[0], p[1], p[2], f.n[0], f.n[1], f.n[2], uvs[i][0], uvs[i][1])
		}
		m.addQuad(ids[0], ids[1], ids[2], ids[3])
	}
	return m
}

// Prism returns a triangular prism: an isosceles cross-section in the
// XY plane (base from (-0.5,-0.5) to (0.5,-0.5), apex at (0,0.5))
// extruded along Z from -0.5 to 0.5, with flat side normals.
func Prism() MeshData {
	var m MeshData

	// CCW cross-section
	section := [3][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0, 0.5}}

	// Front cap (+Z)
	var front [3]uint32
	for i, p := range section {
		front[i] = m.addVertex(p[0], p[1], 0.5, 0, 0, 1, p[0]+0.5, p[1]+0.5)
	}
	m.addTriangle(front[0], front[1], front[2])

	// Back cap (-Z), reversed winding
	var back [3]uint32
	for i, p := range section {
		back[i] = m.addVertex(p[0], p[1], -0.5, 0, 0, -1, p[0]+0.5, p[1]+0.5)
	}
	m.addTriangle(back[2], back[1], back[0])

	// Side quads, one per cross-section edge
	for i := range 3 {
		p1 := section[i]
		p2 := section[(i+1)%3]

		// Outward normal of the edge in the XY plane
		dx := p2[0] - p1[0]
		dy := p2[1] - p1[1]
		inv := 1 / math32.Hypot(dx, dy)
		nx := dy * inv
		ny := -dx * inv

		a := m.addVertex(p1[0], p1[1], 0.5, nx, ny, 0, 0, 0)
		b := m.addVertex(p2[0], p2[1], 0.5, nx, ny, 0, 1, 0)
		c := m.addVertex(p2[0], p2[1], -0.5, nx, ny, 0, 1, 1)
		d := m.addVertex(p1[0], p1[1], -0.5, nx, ny, 0, 0, 1)
		m.addQuad(a, b, c, d)
	}
	return m
}

// Cylinder returns a cylinder of radius 1 with its base on the XZ
// plane and its top at Y=1, matching how the plate transform scales
// and positions it. sectors controls the radial tessellation and is
// clamped to at least 3.
func Cylinder(sectors int) MeshData {
	if sectors < 3 {
		sectors = 3
	}
	var m MeshData

	// Side wall: two rings sharing smooth radial normals
	var bottom, top []uint32
	for j := 0; j <= sectors; j++ {
		theta := 2 * math32.Pi * float32(j) / float32(sectors)
		x := math32.Cos(theta)
		z := math32.Sin(theta)
		u := float32(j) / float32(sectors)
		bottom = append(bottom, m.addVertex(x, 0, z, x, 0, z, u, 0))
		top = append(top, m.addVertex(x, 1, z, x, 0, z, u, 1))
	}
	for j := 0; j < sectors; j++ {
		m.addQuad(bottom[j], bottom[j+1], top[j+1], top[j])
	}

	// Caps: fan around a center vertex
	bc := m.addVertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	tc := m.addVertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	var bRing, tRing []uint32
	for j := 0; j <= sectors; j++ {
		theta := 2 * math32.Pi * float32(j) / float32(sectors)
		x := math32.Cos(theta)
		z := math32.Sin(theta)
		u := 0.5 + 0.5*x
		v := 0.5 + 0.5*z
		bRing = append(bRing, m.addVertex(x, 0, z, 0, -1, 0, u, v))
		tRing = append(tRing, m.addVertex(x, 1, z, 0, 1, 0, u, v))
	}
	for j := 0; j < sectors; j++ {
		m.addTriangle(bc, bRing[j], bRing[j+1])
		m.addTriangle(tc, tRing[j+1], tRing[j])
	}
	return m
}

// Sphere returns a unit-radius UV sphere centered at the origin.
// stacks and sectors are clamped to at least 2 and 3 respectively.
func Sphere(stacks, sectors int) MeshData {
	if stacks < 2 {
		stacks = 2
	}
	if sectors < 3 {
		sectors = 3
	}
	var m MeshData

	for i := 0; i <= stacks; i++ {
		phi := math32.Pi/2 - math32.Pi*float32(i)/float32(stacks)
		y := math32.Sin(phi)
		r := math32.Cos(phi)
		for j := 0; j <= sectors; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(sectors)
			x := r * math32.Cos(theta)
			z := r * math32.Sin(theta)
			u := float32(j) / float32(sectors)
			v := 1 - float32(i)/float32(stacks)
			// Unit sphere: the position doubles as the normal
			m.addVertex(x, y, z, x, y, z, u, v)
		}
	}

	ringSize := uint32(sectors + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			a := uint32(i)*ringSize + uint32(j)
			b := a + ringSize
			if i != 0 {
				m.addTriangle(a, b, a+1)
			}
			if i != stacks-1 {
				m.addTriangle(a+1, b, b+1)
			}
		}
	}
	return m
}
