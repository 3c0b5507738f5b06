package render

import (
	_ "embed"
)

//go:embed shaders/scene.vert
var vertexShaderSource string

//go:embed shaders/scene.frag
var fragmentShaderSource string
