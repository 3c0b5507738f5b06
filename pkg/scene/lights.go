package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// LightSlots is the number of point-light slots in the shader
const LightSlots = 5

// PointLight is one point-light source
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

// LightRig is the fixed set of point lights for the scene. Inactive
// slots are explicitly disabled in the shader so stale uniform state
// can never light the scene.
type LightRig struct {
	Lights [LightSlots]PointLight
}

// DessertLights builds the three-light rig used for the dessert plate
func DessertLights() LightRig {
	var rig LightRig

	// Warm kitchen key light from above-right
	rig.Lights[0] = PointLight{
		Position: mgl32.Vec3{6.0, 12.0, 4.0},
		Ambient:  mgl32.Vec3{0.15, 0.12, 0.1},
		Diffuse:  mgl32.Vec3{0.9, 0.8, 0.7},
		Specular: mgl32.Vec3{0.6, 0.6, 0.5},
		Active:   true,
	}

	// Soft blue accent from the left
	rig.Lights[1] = PointLight{
		Position: mgl32.Vec3{-8.0, 8.0, 2.0},
		Ambient:  mgl32.Vec3{0.05, 0.08, 0.12},
		Diffuse:  mgl32.Vec3{0.3, 0.4, 0.6},
		Specular: mgl32.Vec3{0.2, 0.3, 0.4},
		Active:   true,
	}

	// Fill light from front-right
	rig.Lights[2] = PointLight{
		Position: mgl32.Vec3{4.0, 6.0, 8.0},
		Ambient:  mgl32.Vec3{0.08, 0.08, 0.08},
		Diffuse:  mgl32.Vec3{0.4, 0.4, 0.4},
		Specular: mgl32.Vec3{0.2, 0.2, 0.2},
		Active:   true,
	}

	return rig
}

// Apply uploads the full rig once at setup: active slots get their
// parameters, every other slot is switched off.
func (r LightRig) Apply(sh Uniforms) {
	sh.SetBool("lightingOn", true)

	for i, light := range r.Lights {
		prefix := fmt.Sprintf("pointLights[%d]", i)
		if light.Active {
			sh.SetVec3(prefix+".position", light.Position)
			sh.SetVec3(prefix+".ambient", light.Ambient)
			sh.SetVec3(prefix+".diffuse", light.Diffuse)
			sh.SetVec3(prefix+".specular", light.Specular)
		}
		sh.SetBool(prefix+".active", light.Active)
	}
}

// ActiveCount returns the number of enabled lights
func (r LightRig) ActiveCount() int {
	n := 0
	for _, l := range r.Lights {
		if l.Active {
			n++
		}
	}
	return n
}
