package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"mini-voxel/internal/graphics"
	"mini-voxel/internal/player"
	"mini-voxel/internal/profiling"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL. Chunk meshes emit faces with mixed winding and the
	// shading scheme addresses them by vertex order, so face culling stays
	// off; depth testing handles visibility.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}

	// Initialize all renderables
	for _, renderable := range rs {
		if err := renderable.Init(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// Render clears the frame and draws all renderables with a fresh context
func (r *Renderer) Render(cam *player.Freecam, dt float64) {
	gl.ClearColor(0.1, 0.2, 0.4, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		DT:     dt,
		View:   cam.ViewMatrix(),
		Proj:   r.camera.ProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		func() {
			defer profiling.Track("renderer.Render")()
			renderable.Render(ctx)
		}()
	}
}

// Dispose cleans up all renderables
func (r *Renderer) Dispose() {
	for _, renderable := range r.renderables {
		renderable.Dispose()
	}
}
