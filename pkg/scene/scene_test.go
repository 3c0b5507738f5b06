package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScene builds a scene whose meshes are recorders, so Draw can run
// without a GL context
func fakeScene(sh Uniforms) (*Scene, *[]MeshKind) {
	s := New(sh)
	drawn := &[]MeshKind{}
	for _, kind := range []MeshKind{MeshPlane, MeshBox, MeshPrism, MeshCylinder, MeshSphere} {
		s.meshes[kind] = &fakeMesh{kind: kind, log: drawn}
	}
	return s, drawn
}

func TestDrawFollowsSequenceOrder(t *testing.T) {
	sh := &fakeShader{}
	s, drawn := fakeScene(sh)

	s.Draw()

	require.Len(t, *drawn, len(s.Items()))
	for i, item := range s.Items() {
		assert.Equal(t, item.Mesh, (*drawn)[i], "draw %d out of order", i)
	}
}

func TestDrawSetsPerItemState(t *testing.T) {
	sh := &fakeShader{}
	s, _ := fakeScene(sh)

	s.Draw()

	n := len(s.Items())
	assert.Equal(t, n, sh.count("model"))
	assert.Equal(t, n, sh.count("uvScale"))
	assert.Equal(t, n, sh.count("objectTexture"))
	assert.Equal(t, n, sh.count("useTexture"))

	// No texture was loaded, so every lookup hits the -1 sentinel
	v, ok := sh.value("objectTexture")
	require.True(t, ok)
	assert.Equal(t, int32(-1), v)
}

func TestDrawSkipsMissingMeshes(t *testing.T) {
	sh := &fakeShader{}
	s := New(sh)

	// No meshes prepared at all: state is still set, nothing is drawn
	assert.NotPanics(t, func() { s.Draw() })
	assert.Equal(t, len(s.Items()), sh.count("model"))
}

func TestModelMatrixComposition(t *testing.T) {
	sh := &fakeShader{}
	s, _ := fakeScene(sh)

	s.items = []DrawItem{{
		Scale:       mgl32.Vec3{2, 3, 4},
		RotationDeg: mgl32.Vec3{0, 90, 0},
		Position:    mgl32.Vec3{1, 2, 3},
		Texture:     "plate",
		Material:    "plate",
		UVScale:     mgl32.Vec2{1, 1},
		Mesh:        MeshBox,
	}}
	s.Draw()

	v, ok := sh.value("model")
	require.True(t, ok)
	model := v.(mgl32.Mat4)

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DX(0)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90))).
		Mul4(mgl32.HomogRotate3DZ(0)).
		Mul4(mgl32.Scale3D(2, 3, 4))
	assert.Equal(t, want, model)
}
