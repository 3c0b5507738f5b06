package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material describes the lighting response of a surface
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialTable is a fixed list of named materials populated once at
// startup and looked up by tag at draw time
type MaterialTable struct {
	materials []Material
}

// Add appends a material to the table
func (t *MaterialTable) Add(m Material) {
	t.materials = append(t.materials, m)
}

// Find returns the material registered under tag
func (t *MaterialTable) Find(tag string) (Material, bool) {
	for _, m := range t.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Apply uploads the material's uniforms. An unknown tag leaves the
// previous material state in place and reports false.
func (t *MaterialTable) Apply(sh Uniforms, tag string) bool {
	m, ok := t.Find(tag)
	if !ok {
		return false
	}

	sh.SetVec3("material.ambientColor", m.AmbientColor)
	sh.SetFloat("material.ambientStrength", m.AmbientStrength)
	sh.SetVec3("material.diffuseColor", m.DiffuseColor)
	sh.SetVec3("material.specularColor", m.SpecularColor)
	sh.SetFloat("material.shininess", m.Shininess)
	return true
}

// DessertMaterials builds the material table for the dessert plate
func DessertMaterials() *MaterialTable {
	t := &MaterialTable{}

	// Slightly glossy cake crumb
	t.Add(Material{
		Tag:             "cake",
		AmbientStrength: 0.2,
		AmbientColor:    mgl32.Vec3{0.1, 0.05, 0.02},
		DiffuseColor:    mgl32.Vec3{0.8, 0.6, 0.4},
		SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
		Shininess:       4.0,
	})

	// Smooth frosting, more reflective than cake
	t.Add(Material{
		Tag:             "frosting",
		AmbientStrength: 0.3,
		AmbientColor:    mgl32.Vec3{0.15, 0.15, 0.12},
		DiffuseColor:    mgl32.Vec3{0.9, 0.9, 0.8},
		SpecularColor:   mgl32.Vec3{0.4, 0.4, 0.4},
		Shininess:       16.0,
	})

	// Blueberries and strawberries
	t.Add(Material{
		Tag:             "berry",
		AmbientStrength: 0.25,
		AmbientColor:    mgl32.Vec3{0.08, 0.02, 0.08},
		DiffuseColor:    mgl32.Vec3{0.6, 0.3, 0.7},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:       32.0,
	})

	// Whipped cream, very smooth and reflective
	t.Add(Material{
		Tag:             "cream",
		AmbientStrength: 0.3,
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.18},
		DiffuseColor:    mgl32.Vec3{0.95, 0.95, 0.9},
		SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.6},
		Shininess:       64.0,
	})

	// Ceramic plate with moderate reflectivity
	t.Add(Material{
		Tag:             "plate",
		AmbientStrength: 0.2,
		AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
		DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor:   mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess:       24.0,
	})

	// Fabric tablecloth, low reflectivity
	t.Add(Material{
		Tag:             "table",
		AmbientStrength: 0.15,
		AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
		DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       2.0,
	})

	// Matte green strawberry leaves
	t.Add(Material{
		Tag:             "leaf",
		AmbientStrength: 0.2,
		AmbientColor:    mgl32.Vec3{0.02, 0.08, 0.02},
		DiffuseColor:    mgl32.Vec3{0.2, 0.6, 0.2},
		SpecularColor:   mgl32.Vec3{0.1, 0.2, 0.1},
		Shininess:       4.0,
	})

	// Glossy golden caramel
	t.Add(Material{
		Tag:             "caramel",
		AmbientStrength: 0.3,
		AmbientColor:    mgl32.Vec3{0.15, 0.1, 0.05},
		DiffuseColor:    mgl32.Vec3{0.9, 0.6, 0.2},
		SpecularColor:   mgl32.Vec3{0.8, 0.7, 0.6},
		Shininess:       64.0,
	})

	return t
}
