package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDessertMaterialsLookup(t *testing.T) {
	table := DessertMaterials()

	for _, tag := range []string{"cake", "frosting", "berry", "cream", "plate", "table", "leaf", "caramel"} {
		m, ok := table.Find(tag)
		require.True(t, ok, "material %q missing", tag)
		assert.Equal(t, tag, m.Tag)
		assert.Greater(t, m.Shininess, float32(0))
	}

	_, ok := table.Find("granite")
	assert.False(t, ok)
}

func TestMaterialApplySetsUniforms(t *testing.T) {
	table := &MaterialTable{}
	table.Add(Material{
		Tag:             "test",
		AmbientColor:    mgl32.Vec3{0.1, 0.2, 0.3},
		AmbientStrength: 0.4,
		DiffuseColor:    mgl32.Vec3{0.5, 0.6, 0.7},
		SpecularColor:   mgl32.Vec3{0.8, 0.9, 1.0},
		Shininess:       32,
	})

	sh := &fakeShader{}
	require.True(t, table.Apply(sh, "test"))

	v, ok := sh.value("material.ambientColor")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, v)

	v, ok = sh.value("material.ambientStrength")
	require.True(t, ok)
	assert.Equal(t, float32(0.4), v)

	v, ok = sh.value("material.shininess")
	require.True(t, ok)
	assert.Equal(t, float32(32), v)
}

func TestMaterialApplyUnknownTagIsNoop(t *testing.T) {
	table := DessertMaterials()
	sh := &fakeShader{}

	assert.False(t, table.Apply(sh, "granite"))
	assert.Empty(t, sh.calls)
}
