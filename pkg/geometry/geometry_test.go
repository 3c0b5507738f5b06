package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vertexAt returns the position, normal and UV of vertex i
func vertexAt(m MeshData, i int) (pos, norm [3]float32, uv [2]float32) {
	base := i * FloatsPerVertex
	copy(pos[:], m.Vertices[base:base+3])
	copy(norm[:], m.Vertices[base+3:base+6])
	copy(uv[:], m.Vertices[base+6:base+8])
	return
}

func checkMeshInvariants(t *testing.T, m MeshData) {
	t.Helper()

	require.Equal(t, 0, len(m.Vertices)%FloatsPerVertex, "vertex data must be a whole number of vertices")
	require.Equal(t, 0, len(m.Indices)%3, "indices must form whole triangles")

	n := m.VertexCount()
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), n, "index out of range")
	}

	for i := 0; i < n; i++ {
		_, norm, _ := vertexAt(m, i)
		length := math32.Sqrt(norm[0]*norm[0] + norm[1]*norm[1] + norm[2]*norm[2])
		assert.InDelta(t, 1.0, float64(length), 1e-5, "normal %d not unit length", i)
	}
}

func TestPlane(t *testing.T) {
	m := Plane()
	checkMeshInvariants(t, m)

	assert.Equal(t, 4, m.VertexCount())
	assert.Len(t, m.Indices, 6)

	for i := 0; i < m.VertexCount(); i++ {
		pos, norm, _ := vertexAt(m, i)
		assert.Equal(t, float32(0), pos[1], "plane must lie on the XZ plane")
		assert.Equal(t, [3]float32{0, 1, 0}, norm)
	}
}

func TestBox(t *testing.T) {
	m := Box()
	checkMeshInvariants(t, m)

	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)

	for i := 0; i < m.VertexCount(); i++ {
		pos, norm, _ := vertexAt(m, i)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0.5, math32.Abs(pos[axis]), 1e-6, "box corner off the unit cube")
		}
		// Each face normal is axis-aligned
		sum := math32.Abs(norm[0]) + math32.Abs(norm[1]) + math32.Abs(norm[2])
		assert.InDelta(t, 1.0, float64(sum), 1e-6)
	}
}

func TestPrism(t *testing.T) {
	m := Prism()
	checkMeshInvariants(t, m)

	// Two triangular caps plus three side quads
	assert.Equal(t, 18, m.VertexCount())
	assert.Len(t, m.Indices, 2*3+3*6)

	for i := 0; i < m.VertexCount(); i++ {
		pos, _, _ := vertexAt(m, i)
		assert.InDelta(t, 0.5, math32.Abs(pos[2]), 1e-6, "prism extrusion must span Z = ±0.5")
	}
}

func TestCylinder(t *testing.T) {
	m := Cylinder(32)
	checkMeshInvariants(t, m)

	for i := 0; i < m.VertexCount(); i++ {
		pos, _, _ := vertexAt(m, i)
		assert.True(t, pos[1] == 0 || pos[1] == 1, "cylinder spans Y in [0,1], got %v", pos[1])

		radius := math32.Hypot(pos[0], pos[2])
		assert.LessOrEqual(t, float64(radius), 1.0+1e-5)
	}

	// Ring vertices sit exactly on the unit radius
	pos, norm, _ := vertexAt(m, 0)
	assert.InDelta(t, 1.0, float64(math32.Hypot(pos[0], pos[2])), 1e-5)
	assert.Equal(t, float32(0), norm[1], "side normals are radial")
}

func TestCylinderClampsSectors(t *testing.T) {
	m := Cylinder(0)
	checkMeshInvariants(t, m)
	assert.NotEmpty(t, m.Indices)
}

func TestSphere(t *testing.T) {
	m := Sphere(12, 24)
	checkMeshInvariants(t, m)

	for i := 0; i < m.VertexCount(); i++ {
		pos, norm, _ := vertexAt(m, i)
		radius := math32.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
		assert.InDelta(t, 1.0, float64(radius), 1e-5, "sphere vertex off the unit radius")
		assert.Equal(t, pos, norm, "unit sphere normals equal positions")
	}
}

func TestSphereClampsTessellation(t *testing.T) {
	m := Sphere(0, 0)
	checkMeshInvariants(t, m)
	assert.NotEmpty(t, m.Indices)
}
