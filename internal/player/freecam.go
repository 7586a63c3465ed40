// Package player implements the freecam: a fly-anywhere camera with mouse
// look and WASD movement. It owns the view matrix the renderer folds into
// the camera uniform each frame.
package player

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/config"
)

// Freecam is the flying camera state
type Freecam struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees, -90 looks down -Z
	Pitch    float32 // degrees, clamped to avoid gimbal flip

	// Mouse look state
	FirstMouse bool
	Grabbed    bool
	lastX      float64
	lastY      float64

	// Movement flags, held keys
	forward  bool
	backward bool
	left     bool
	right    bool
	up       bool
	down     bool
}

// NewFreecam creates a freecam at the given position looking down -Z
func NewFreecam(position mgl32.Vec3) *Freecam {
	return &Freecam{
		Position:   position,
		Yaw:        -90,
		FirstMouse: true,
		Grabbed:    true,
	}
}

// HandleMouseMovement updates yaw/pitch from cursor travel
func (f *Freecam) HandleMouseMovement(xpos, ypos float64) {
	if !f.Grabbed {
		return
	}
	if f.FirstMouse {
		f.lastX, f.lastY = xpos, ypos
		f.FirstMouse = false
		return
	}
	dx := xpos - f.lastX
	dy := ypos - f.lastY
	f.lastX, f.lastY = xpos, ypos

	sens := config.GetMouseSensitivity()
	f.Yaw += float32(dx) * sens
	f.Pitch -= float32(dy) * sens
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}
}

// HandleKey tracks held movement keys
func (f *Freecam) HandleKey(key glfw.Key, action glfw.Action) {
	pressed := action != glfw.Release
	switch key {
	case glfw.KeyW:
		f.forward = pressed
	case glfw.KeyS:
		f.backward = pressed
	case glfw.KeyA:
		f.left = pressed
	case glfw.KeyD:
		f.right = pressed
	case glfw.KeySpace, glfw.KeyQ:
		f.up = pressed
	case glfw.KeyLeftShift, glfw.KeyE:
		f.down = pressed
	}
}

// ToggleGrab switches mouse capture on or off
func (f *Freecam) ToggleGrab(window *glfw.Window) {
	f.Grabbed = !f.Grabbed
	if f.Grabbed {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		f.FirstMouse = true
	} else {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// Update advances the camera position for held keys
func (f *Freecam) Update(dt float64) {
	if !f.Grabbed {
		return
	}
	step := config.GetMoveSpeed() * float32(dt)
	fwd := f.forwardDir()
	right := fwd.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	if f.forward {
		f.Position = f.Position.Add(fwd.Mul(step))
	}
	if f.backward {
		f.Position = f.Position.Sub(fwd.Mul(step))
	}
	if f.left {
		f.Position = f.Position.Sub(right.Mul(step))
	}
	if f.right {
		f.Position = f.Position.Add(right.Mul(step))
	}
	if f.up {
		f.Position = f.Position.Add(mgl32.Vec3{0, step, 0})
	}
	if f.down {
		f.Position = f.Position.Sub(mgl32.Vec3{0, step, 0})
	}
}

// ViewMatrix returns the look-at view transform for the current pose
func (f *Freecam) ViewMatrix() mgl32.Mat4 {
	fwd := f.forwardDir()
	return mgl32.LookAtV(f.Position, f.Position.Add(fwd), mgl32.Vec3{0, 1, 0})
}

func (f *Freecam) forwardDir() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(f.Yaw))
	pitch := float64(mgl32.DegToRad(f.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}.Normalize()
}
