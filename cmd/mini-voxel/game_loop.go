package main

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-voxel/internal/profiling"
)

// GameLoop manages the main frame loop state
type GameLoop struct {
	window *glfw.Window
	scene  *Scene

	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewGameLoop creates a new game loop over the scene
func NewGameLoop(window *glfw.Window, scene *Scene) *GameLoop {
	return &GameLoop{
		window:           window,
		scene:            scene,
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// Run drives the frame loop until the window closes
func (g *GameLoop) Run() {
	for !g.window.ShouldClose() {
		g.tick()
	}
}

func (g *GameLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(g.lastTime).Seconds()
	g.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	func() { defer profiling.Track("player.Update")(); g.scene.Freecam.Update(dt) }()

	g.scene.Renderer.Render(g.scene.Freecam, dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); g.window.SwapBuffers() }()

	g.frames++
	if time.Since(g.lastFPSCheckTime) >= time.Second {
		fmt.Println("FPS:", g.frames)
		g.frames = 0
		g.lastFPSCheckTime = time.Now()
	}
}
