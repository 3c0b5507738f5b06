package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects how the camera projects the scene
type ProjectionMode int

const (
	// Perspective is the standard 3D projection with depth foreshortening
	Perspective ProjectionMode = iota
	// Orthographic is a parallel projection with no perspective divide
	Orthographic
)

// String returns a human-readable name for the projection mode
func (m ProjectionMode) String() string {
	if m == Orthographic {
		return "Orthographic"
	}
	return "Perspective"
}

// KeyState is the polled keyboard state the camera consumes each frame.
// The renderer fills it from the window system so the camera itself
// never touches GLFW.
type KeyState struct {
	Forward  bool // W
	Backward bool // S
	Left     bool // A
	Right    bool // D
	Up       bool // Q
	Down     bool // E

	Perspective  bool // P
	Orthographic bool // O

	Exit bool // Escape
}

// Camera implements the free-fly camera and view controller. It owns
// position and orientation, turns polled input into motion, and emits
// fresh view and projection matrices on demand.
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles
	yaw   float32
	pitch float32

	// Camera options
	fov         float32
	moveSpeed   float32
	rotateSpeed float32

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool

	// Projection
	mode   ProjectionMode
	width  int
	height int

	// Edge detection for the projection-toggle keys
	pWasPressed bool
	oWasPressed bool

	closeRequested bool

	// OnModeChange, if set, is called once per projection-key press
	OnModeChange func(ProjectionMode)
}

// NewCamera creates a camera at the given position looking along the
// given direction. The direction seed is normalized; yaw and pitch
// start at their defaults and take over once the mouse moves.
func NewCamera(position, front mgl32.Vec3) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		front:       front.Normalize(),
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		fov:         DefaultFOV,
		moveSpeed:   DefaultMoveSpeed,
		rotateSpeed: MouseSensitivity,
		firstMouse:  true,
		mode:        Perspective,
		width:       WindowWidth,
		height:      WindowHeight,
	}
	c.right = c.front.Cross(c.worldUp).Normalize()
	return c
}

// updateCameraVectors recalculates the front and right vectors from
// the Euler angles using the spherical-to-Cartesian conversion
func (c *Camera) updateCameraVectors() {
	front := mgl32.Vec3{
		float32(math.Cos(float64(mgl32.DegToRad(c.yaw))) * math.Cos(float64(mgl32.DegToRad(c.pitch)))),
		float32(math.Sin(float64(mgl32.DegToRad(c.pitch)))),
		float32(math.Sin(float64(mgl32.DegToRad(c.yaw))) * math.Cos(float64(mgl32.DegToRad(c.pitch)))),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
}

// HandleMouseMovement updates camera orientation from an absolute
// cursor position. The first sample after creation (or after a
// tracking reset) only records the baseline, so the initial event
// cannot produce a spurious jump.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(c.lastY - ypos) // Reversed: window Y grows downward

	c.lastX = xpos
	c.lastY = ypos

	xoffset *= c.rotateSpeed
	yoffset *= c.rotateSpeed

	c.yaw += xoffset
	c.pitch += yoffset

	// Constrain pitch to avoid gimbal lock
	if c.pitch > MaxPitch {
		c.pitch = MaxPitch
	}
	if c.pitch < MinPitch {
		c.pitch = MinPitch
	}

	c.updateCameraVectors()
}

// HandleMouseScroll adjusts the movement speed. Scroll does not zoom;
// the field of view stays fixed.
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.moveSpeed += float32(yoffset) * ScrollSpeedStep

	if c.moveSpeed < MinMoveSpeed {
		c.moveSpeed = MinMoveSpeed
	}
	if c.moveSpeed > MaxMoveSpeed {
		c.moveSpeed = MaxMoveSpeed
	}
}

// Tick advances the camera one frame: movement keys translate the
// position scaled by the elapsed time, the exit key raises the close
// request, and the projection keys switch modes edge-triggered so a
// held key switches only once.
func (c *Camera) Tick(deltaTime float32, keys KeyState) {
	if keys.Exit {
		c.closeRequested = true
	}

	speed := c.moveSpeed * deltaTime

	if keys.Forward {
		c.position = c.position.Add(c.front.Mul(speed))
	}
	if keys.Backward {
		c.position = c.position.Sub(c.front.Mul(speed))
	}
	if keys.Left {
		c.position = c.position.Sub(c.right.Mul(speed))
	}
	if keys.Right {
		c.position = c.position.Add(c.right.Mul(speed))
	}
	if keys.Up {
		c.position = c.position.Add(c.worldUp.Mul(speed))
	}
	if keys.Down {
		c.position = c.position.Sub(c.worldUp.Mul(speed))
	}

	if keys.Perspective {
		if !c.pWasPressed {
			c.pWasPressed = true
			c.setMode(Perspective)
		}
	} else {
		c.pWasPressed = false
	}

	if keys.Orthographic {
		if !c.oWasPressed {
			c.oWasPressed = true
			c.setMode(Orthographic)
		}
	} else {
		c.oWasPressed = false
	}
}

func (c *Camera) setMode(mode ProjectionMode) {
	c.mode = mode
	if c.OnModeChange != nil {
		c.OnModeChange(mode)
	}
}

// ViewMatrix returns the view matrix, recomputed from the current pose
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.worldUp)
}

// ProjectionMatrix returns the projection matrix for the current mode
// and viewport, recomputed on every call so it can never go stale
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.width) / float32(c.height)

	if c.mode == Orthographic {
		return mgl32.Ortho(
			-OrthoSize*aspect/2, OrthoSize*aspect/2,
			-OrthoSize/2, OrthoSize/2,
			NearPlane, FarPlane,
		)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// SetViewport updates the viewport dimensions used for the aspect ratio
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// MoveSpeed returns the current scroll-controlled movement speed
func (c *Camera) MoveSpeed() float32 {
	return c.moveSpeed
}

// Mode returns the current projection mode
func (c *Camera) Mode() ProjectionMode {
	return c.mode
}

// CloseRequested reports whether the exit key was pressed. The caller
// owns the window and decides what to do with the signal.
func (c *Camera) CloseRequested() bool {
	return c.closeRequested
}

// ResetMouseState resets the first-mouse flag so the next cursor
// sample is treated as a fresh baseline
func (c *Camera) ResetMouseState() {
	c.firstMouse = true
}
