package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/graphics"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// CameraMatrix folds projection and view into the single view-projection
// uniform the chunk shader consumes, constant for the whole frame.
func (ctx RenderContext) CameraMatrix() mgl32.Mat4 {
	return ctx.Proj.Mul4(ctx.View)
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
