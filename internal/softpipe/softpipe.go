// Package softpipe runs the shading pipeline on the CPU. It reproduces the
// GPU execution model with plain function calls: the vertex stage once per
// fetched index, the fragment stage once per covered pixel, no state
// shared between invocations beyond the read-only uniforms and face-code
// buffer. Rendering semantics (barycentric smooth varyings, provoking
// vertex for flat varyings, depth test) match what the GL pipeline does,
// which makes the end-to-end shading behavior testable without a GPU.
package softpipe

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/shading"
)

// Framebuffer is a color attachment plus depth buffer.
type Framebuffer struct {
	Color  *image.RGBA
	depth  []float32
	width  int
	height int
}

// NewFramebuffer allocates a framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Color:  image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float32, width*height),
		width:  width,
		height: height,
	}
}

// Clear resets every pixel to c and the depth buffer to the far plane.
func (f *Framebuffer) Clear(c color.RGBA) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.Color.SetRGBA(x, y, c)
		}
	}
	for i := range f.depth {
		f.depth[i] = math.MaxFloat32
	}
}

// RGBA8 converts a 0..1 float color to 8-bit RGBA, clamping each channel.
func RGBA8(c mgl32.Vec4) color.RGBA {
	conv := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: conv(c.X()), G: conv(c.Y()), B: conv(c.Z()), A: conv(c.W())}
}

// screenVertex is a vertex-stage output mapped to window coordinates.
type screenVertex struct {
	x, y, z   float32
	color     mgl32.Vec3
	faceIndex shading.Flat
}

// DrawIndexed rasterizes an indexed triangle list through the shading
// stages. Index values are fed to the vertex stage as the vertex index,
// matching indexed-draw semantics on the GPU, so the face derivation sees
// the same numbers either way. Face culling is off: both windings draw.
func DrawIndexed(fb *Framebuffer, vertices []shading.Vertex, indices []uint32, u *shading.Uniforms, faceCodes []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		var sv [3]screenVertex
		behind := false
		for j := 0; j < 3; j++ {
			idx := indices[i+j]
			out := shading.VertexStage(vertices[idx], idx, u)

			w := out.ClipPosition.W()
			if w <= 0 {
				behind = true
				break
			}
			// Perspective divide, then NDC to window coordinates.
			ndcX := out.ClipPosition.X() / w
			ndcY := out.ClipPosition.Y() / w
			sv[j] = screenVertex{
				x:         (ndcX + 1) * 0.5 * float32(fb.width),
				y:         (1 - ndcY) * 0.5 * float32(fb.height),
				z:         out.ClipPosition.Z() / w,
				color:     out.Color,
				faceIndex: out.FaceIndex,
			}
		}
		if behind {
			continue
		}
		fb.rasterize(sv, faceCodes)
	}
}

func (fb *Framebuffer) rasterize(sv [3]screenVertex, faceCodes []uint32) {
	minX := int(math.Max(0, math.Floor(float64(min3(sv[0].x, sv[1].x, sv[2].x)))))
	maxX := int(math.Min(float64(fb.width-1), math.Ceil(float64(max3(sv[0].x, sv[1].x, sv[2].x)))))
	minY := int(math.Max(0, math.Floor(float64(min3(sv[0].y, sv[1].y, sv[2].y)))))
	maxY := int(math.Min(float64(fb.height-1), math.Ceil(float64(max3(sv[0].y, sv[1].y, sv[2].y)))))

	// The flat varying comes from the provoking vertex (first of the
	// primitive) and never interpolates. All three vertices of a face's
	// triangles carry the same value anyway; picking one enforces it.
	flat := sv[0].faceIndex

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0, w1, w2, ok := barycentric(sv, px, py)
			if !ok {
				continue
			}

			z := w0*sv[0].z + w1*sv[1].z + w2*sv[2].z
			di := y*fb.width + x
			if z >= fb.depth[di] {
				continue
			}

			out := shading.FragmentStage(shading.FragmentInput{
				Color:     interpolateVec3(sv[0].color, sv[1].color, sv[2].color, w0, w1, w2),
				FaceIndex: flat,
			}, faceCodes)

			fb.depth[di] = z
			fb.Color.SetRGBA(x, y, RGBA8(out))
		}
	}
}

// barycentric returns the weights of (px, py) relative to the triangle's
// corners, and whether the point is covered. Degenerate triangles cover
// nothing.
func barycentric(sv [3]screenVertex, px, py float32) (w0, w1, w2 float32, ok bool) {
	d := (sv[1].y-sv[2].y)*(sv[0].x-sv[2].x) + (sv[2].x-sv[1].x)*(sv[0].y-sv[2].y)
	if d == 0 {
		return 0, 0, 0, false
	}
	w0 = ((sv[1].y-sv[2].y)*(px-sv[2].x) + (sv[2].x-sv[1].x)*(py-sv[2].y)) / d
	w1 = ((sv[2].y-sv[0].y)*(px-sv[2].x) + (sv[0].x-sv[2].x)*(py-sv[2].y)) / d
	w2 = 1 - w0 - w1
	return w0, w1, w2, w0 >= 0 && w1 >= 0 && w2 >= 0
}

func interpolateVec3(c0, c1, c2 mgl32.Vec3, w0, w1, w2 float32) mgl32.Vec3 {
	return c0.Mul(w0).Add(c1.Mul(w1)).Add(c2.Mul(w2))
}

func min3(a, b, c float32) float32 {
	return min(a, min(b, c))
}

func max3(a, b, c float32) float32 {
	return max(a, max(b, c))
}
