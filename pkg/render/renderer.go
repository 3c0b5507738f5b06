package render

import (
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"dessertscene/internal/openglhelper"
	"dessertscene/pkg/scene"
)

// Renderer owns the window, camera, shader, and scene, and drives the
// per-frame loop: input, camera tick, matrix upload, draw sequence.
type Renderer struct {
	window *openglhelper.Window
	camera *Camera
	shader *openglhelper.Shader
	scene  *scene.Scene

	lastFrameTime float64
}

// NewRenderer creates the window and GL context, compiles the scene
// shader, prepares the scene content, and wires the input callbacks.
func NewRenderer(width, height int, title string, vsync bool) (*Renderer, error) {
	window, err := openglhelper.NewWindow(width, height, title, vsync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene shader: %w", err)
	}

	camera := NewCamera(mgl32.Vec3{0, 3, 12}, mgl32.Vec3{0, -0.2, -1})
	camera.SetViewport(width, height)
	camera.OnModeChange = func(mode ProjectionMode) {
		log.Printf("Switched to %s Projection", mode)
	}

	sc := scene.New(shader)
	shader.Use()
	sc.Prepare()

	r := &Renderer{
		window: window,
		camera: camera,
		shader: shader,
		scene:  sc,
	}

	// Thin adapters at the system boundary; all state lives in the camera
	window.GLFWWindow().SetCursorPosCallback(r.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	return r, nil
}

// pollKeys snapshots the keyboard state the camera consumes
func (r *Renderer) pollKeys() KeyState {
	press := func(key glfw.Key) bool {
		return r.window.GetKeyState(key) == Press
	}
	return KeyState{
		Forward:      press(KeyW),
		Backward:     press(KeyS),
		Left:         press(KeyA),
		Right:        press(KeyD),
		Up:           press(KeyQ),
		Down:         press(KeyE),
		Perspective:  press(KeyP),
		Orthographic: press(KeyO),
		Exit:         press(KeyEscape),
	}
}

// Run starts the main rendering loop and blocks until the window closes
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.camera.Tick(deltaTime, r.pollKeys())
		if r.camera.CloseRequested() {
			r.window.RequestClose()
		}

		r.window.Clear(mgl32.Vec4{0.1, 0.1, 0.1, 1.0})

		r.shader.Use()
		r.shader.SetMat4("view", r.camera.ViewMatrix())
		r.shader.SetMat4("projection", r.camera.ProjectionMatrix())
		r.shader.SetVec3("viewPosition", r.camera.Position())

		r.scene.Draw()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	r.scene.Destroy()
	r.shader.Delete()
	r.window.Close()
}

// Camera returns the view controller, mainly for repositioning at startup
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Callback adapters

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.camera.HandleMouseMovement(xpos, ypos)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.camera.HandleMouseScroll(yoffset)
}

func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	// Toggle mouse capture with C; the next cursor sample becomes a
	// fresh baseline so the view does not jump
	if key == KeyC && action == Press {
		r.window.ToggleMouseCaptured()
		r.camera.ResetMouseState()
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.SetViewport(width, height)
}
