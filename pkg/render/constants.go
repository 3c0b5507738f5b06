package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeyQ      = glfw.KeyQ
	KeyE      = glfw.KeyE
	KeyP      = glfw.KeyP
	KeyO      = glfw.KeyO
	KeyC      = glfw.KeyC
	KeyEscape = glfw.KeyEscape
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
)

// Window constants
const (
	WindowWidth  = 1000
	WindowHeight = 800
	WindowTitle  = "Dessert Plate"
)

// Camera constants
const (
	// Movement speed, adjusted by the scroll wheel
	DefaultMoveSpeed = 2.5
	MinMoveSpeed     = 0.1
	MaxMoveSpeed     = 10.0
	ScrollSpeedStep  = 0.5

	// Mouse look sensitivity
	MouseSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view is fixed; the scroll wheel drives movement speed
	DefaultFOV = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Projection frustum
	NearPlane = 0.1
	FarPlane  = 100.0

	// Vertical extent of the orthographic frustum in world units
	OrthoSize = 15.0
)
