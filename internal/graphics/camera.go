package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/config"
)

// Camera handles the projection matrix
type Camera struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Resize updates the aspect ratio after a framebuffer size change
func (c *Camera) Resize(width, height int) {
	c.AspectRatio = float32(width) / float32(height)
}

// ProjectionMatrix returns the perspective projection for the current FOV
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(config.GetFOV()), c.AspectRatio, c.NearPlane, c.FarPlane)
}
