package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

func setupInputHandlers(window *glfw.Window, scene *Scene) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		scene.Freecam.HandleMouseMovement(xpos, ypos)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch {
		case key == glfw.KeyL && action == glfw.Press:
			scene.Freecam.ToggleGrab(w)
		case key == glfw.KeyP && action == glfw.Press:
			fmt.Println("frame:", profiling.TopN(5))
		case key == glfw.KeyB && action == glfw.Press:
			// Toggle a stone block above the staircase and re-mesh.
			if scene.Chunk.GetBlock(8, 14, 8) == world.BlockAir {
				scene.Chunk.SetBlock(8, 14, 8, world.BlockStone)
			} else {
				scene.Chunk.SetBlock(8, 14, 8, world.BlockAir)
			}
			scene.Chunks.MarkDirty()
		case key == glfw.KeyEscape && action == glfw.Press:
			w.SetShouldClose(true)
		default:
			scene.Freecam.HandleKey(key, action)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		scene.Renderer.Camera().Resize(width, height)
	})
}
