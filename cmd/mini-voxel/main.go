package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	scene, err := setupScene()
	if err != nil {
		panic(fmt.Sprintf("scene setup: %v", err))
	}
	defer scene.Renderer.Dispose()

	setupInputHandlers(window, scene)

	NewGameLoop(window, scene).Run()
}
