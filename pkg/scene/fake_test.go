package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// uniformCall records one shader uniform write
type uniformCall struct {
	name  string
	value any
}

// fakeShader records uniform writes so tests can inspect what the
// scene pushed and in what order
type fakeShader struct {
	calls []uniformCall
}

func (f *fakeShader) record(name string, value any) {
	f.calls = append(f.calls, uniformCall{name: name, value: value})
}

func (f *fakeShader) SetBool(name string, value bool)     { f.record(name, value) }
func (f *fakeShader) SetInt(name string, value int32)     { f.record(name, value) }
func (f *fakeShader) SetFloat(name string, value float32) { f.record(name, value) }
func (f *fakeShader) SetVec2(name string, vec mgl32.Vec2) { f.record(name, vec) }
func (f *fakeShader) SetVec3(name string, vec mgl32.Vec3) { f.record(name, vec) }
func (f *fakeShader) SetMat4(name string, mat mgl32.Mat4) { f.record(name, mat) }

// value returns the last value written to the named uniform
func (f *fakeShader) value(name string) (any, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i].value, true
		}
	}
	return nil, false
}

// count returns how many times the named uniform was written
func (f *fakeShader) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// fakeMesh records draw calls into a shared log keyed by mesh kind
type fakeMesh struct {
	kind MeshKind
	log  *[]MeshKind
}

func (f *fakeMesh) Draw() {
	*f.log = append(*f.log, f.kind)
}
