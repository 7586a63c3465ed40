// Package shading implements the chunk shading pipeline as pure functions:
// a vertex transform stage and a fragment shading stage, mirroring the GPU
// shader pair one invocation at a time. Both stages are stateless; every
// input they read is a parameter and every result is a return value, so
// invocations can run in any order or in parallel without coordination.
package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VerticesPerFace is the mesh emission contract shared with the mesher:
// every 4 consecutive vertex indices belong to the same face. Faces are
// indexed quads (4 vertices, 6 indices), so indexed draws only ever see
// index values 4f..4f+3 for face f. The face-code buffer is aligned to
// vertexIndex / VerticesPerFace.
const VerticesPerFace = 4

// Vertex is one record of the vertex input stream.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Uniforms holds the two external matrices read by the vertex stage.
// Camera is the view-projection matrix, constant for the whole frame;
// Model is the per-object transform, constant for one draw call.
type Uniforms struct {
	Camera mgl32.Mat4
	Model  mgl32.Mat4
}

// Flat wraps a per-primitive value that must never be interpolated across
// a primitive. Rasterizers resolve it from the provoking vertex; blending
// it like a smooth varying would mix face identifiers across edges and
// index the wrong face codes.
type Flat struct {
	Value uint32
}

// VertexOutput is what the vertex stage hands to the rasterizer.
type VertexOutput struct {
	ClipPosition mgl32.Vec4
	Color        mgl32.Vec3 // smooth varying
	FaceIndex    Flat
}

// FragmentInput is one fragment's interpolated view of a primitive.
type FragmentInput struct {
	Color     mgl32.Vec3 // barycentric blend of the corner colors
	FaceIndex Flat       // provoking-vertex value, identical for all fragments
}

// VertexStage transforms one vertex. The model transform applies before
// the camera matrix; swapping them changes scene composition and is a
// correctness bug, not a style choice. vertexIndex is the value the draw
// call assigns to this vertex (for indexed draws, the fetched index).
func VertexStage(v Vertex, vertexIndex uint32, u *Uniforms) VertexOutput {
	return VertexOutput{
		ClipPosition: u.Camera.Mul4(u.Model).Mul4x1(v.Position.Vec4(1.0)),
		Color:        v.Color,
		FaceIndex:    Flat{Value: vertexIndex / VerticesPerFace},
	}
}

// Lighting tiers for the six cube face directions. Each pair of face
// codes shares a tier, approximating one fixed directional light without
// per-vertex normals or any dot-product math.
const (
	shadeDark   = 0.3
	shadeMid    = 0.5
	shadeBright = 0.75
)

// SentinelColor is emitted for any face code outside 0..5. Malformed
// face-code data shows up as gray patches instead of failing the draw.
var SentinelColor = mgl32.Vec4{0.5, 0.5, 0.5, 1.0}

// FragmentStage shades one fragment: it looks up the face orientation
// code for the fragment's face and maps it to a lighting tier. faceCodes
// is shared read-only state for the duration of the draw; an index past
// its end is treated as an invalid code so a mis-sized buffer degrades
// visibly rather than panicking a CPU simulation.
func FragmentStage(in FragmentInput, faceCodes []uint32) mgl32.Vec4 {
	code := ^uint32(0)
	if i := int(in.FaceIndex.Value); i >= 0 && i < len(faceCodes) {
		code = faceCodes[i]
	}

	switch code {
	case 0, 1:
		return mgl32.Vec4{shadeDark, 0.0, 0.0, 1.0}
	case 2, 3:
		return mgl32.Vec4{shadeMid, 0.0, 0.0, 1.0}
	case 4, 5:
		return mgl32.Vec4{shadeBright, 0.0, 0.0, 1.0}
	default:
		return SentinelColor
	}
}
