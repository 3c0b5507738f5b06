package main

import (
	"flag"
	"log"
	"runtime"

	"dessertscene/pkg/render"
)

func init() {
	// OpenGL functions must be called from the same thread
	runtime.LockOSThread()
}

func main() {
	vsync := flag.Bool("vsync", true, "Synchronize buffer swaps with the display refresh")
	flag.Parse()

	renderer, err := render.NewRenderer(render.WindowWidth, render.WindowHeight, render.WindowTitle, *vsync)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
