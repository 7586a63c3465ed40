package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/graphics/renderables/chunks"
	"mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/player"
	"mini-voxel/internal/world"
)

const (
	winW = 900
	winH = 600
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winW, winH, "mini-voxel", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// Scene holds the initialized components the loop and input handlers share
type Scene struct {
	Renderer *renderer.Renderer
	Freecam  *player.Freecam
	Chunk    *world.Chunk
	Chunks   *chunks.Chunks
}

func setupScene() (*Scene, error) {
	chunk := world.Staircase()
	chunksRenderer := chunks.NewChunks(chunk, mgl32.Ident4())

	r, err := renderer.NewRenderer(winW, winH, chunksRenderer)
	if err != nil {
		return nil, err
	}

	// Start behind the chunk's tall edge, looking at its center.
	cam := player.NewFreecam(mgl32.Vec3{8, 14, 40})

	return &Scene{
		Renderer: r,
		Freecam:  cam,
		Chunk:    chunk,
		Chunks:   chunksRenderer,
	}, nil
}
