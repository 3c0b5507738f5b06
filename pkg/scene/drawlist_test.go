package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDessertPlateSequence(t *testing.T) {
	items := DessertPlate()
	require.Len(t, items, 40)

	// The table is drawn first, then the plate everything sits on
	assert.Equal(t, MeshPlane, items[0].Mesh)
	assert.Equal(t, "tablecloth", items[0].Texture)
	assert.Equal(t, "table", items[0].Material)

	assert.Equal(t, MeshCylinder, items[1].Mesh)
	assert.Equal(t, "plate", items[1].Texture)

	counts := map[MeshKind]int{}
	for _, item := range items {
		counts[item.Mesh]++
	}
	assert.Equal(t, 1, counts[MeshPlane])
	assert.Equal(t, 1, counts[MeshCylinder])
	assert.Equal(t, 6, counts[MeshPrism], "three cake layers, two frosting layers, one top cap")
	assert.Equal(t, 7, counts[MeshBox], "frosting back plus six drizzle lines")
	assert.Equal(t, 25, counts[MeshSphere], "cream, strawberry, blueberries, drizzle caps")
}

func TestDessertPlateTagsResolve(t *testing.T) {
	items := DessertPlate()
	materials := DessertMaterials()

	known := map[string]bool{}
	for _, tf := range dessertTextures() {
		known[tf.tag] = true
	}

	for i, item := range items {
		assert.True(t, known[item.Texture], "item %d references unknown texture %q", i, item.Texture)
		_, ok := materials.Find(item.Material)
		assert.True(t, ok, "item %d references unknown material %q", i, item.Material)
	}
}

func TestCakeLayersShareTilt(t *testing.T) {
	items := DessertPlate()

	// The six prism layers lean together as one slice
	tilt := mgl32.Vec3{0, -10, -90}
	for i, item := range items {
		if item.Mesh == MeshPrism {
			assert.Equal(t, tilt, item.RotationDeg, "prism %d out of line", i)
		}
	}
}

func TestDrizzleCapsInheritLineUVScale(t *testing.T) {
	items := DessertPlate()

	for i := 0; i < len(items); i++ {
		item := items[i]
		if item.Mesh != MeshBox || item.Texture != "caramel" {
			continue
		}
		// Each line is followed by its two end caps
		require.Less(t, i+2, len(items))
		assert.Equal(t, item.UVScale, items[i+1].UVScale)
		assert.Equal(t, item.UVScale, items[i+2].UVScale)
		assert.Equal(t, MeshSphere, items[i+1].Mesh)
		assert.Equal(t, MeshSphere, items[i+2].Mesh)
	}
}
