// Package meshing builds chunk meshes in the layout the shading pipeline
// addresses: every visible block face contributes exactly
// shading.VerticesPerFace vertices, IndicesPerFace indices and one face
// orientation code, in lock-step, so vertexIndex/VerticesPerFace recovers
// the face of any vertex.
package meshing

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/shading"
	"mini-voxel/internal/world"
)

// IndicesPerFace is the index count of one quad emitted as two triangles
// ([0,1,2, 0,2,3] offset by the face's first vertex).
const IndicesPerFace = 6

// Mesh is one chunk's draw data. Vertices and FaceCodes are index-aligned:
// vertex i belongs to the face with code FaceCodes[i/shading.VerticesPerFace].
type Mesh struct {
	Vertices  []shading.Vertex
	Indices   []uint32
	FaceCodes []uint32
}

// FaceCount returns the number of faces in the mesh.
func (m *Mesh) FaceCount() int {
	return len(m.FaceCodes)
}

// VertexData returns the vertex stream interleaved for GPU upload:
// position xyz followed by color rgb, float32 each.
func (m *Mesh) VertexData() []float32 {
	data := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		data = append(data,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Color.X(), v.Color.Y(), v.Color.Z(),
		)
	}
	return data
}

// Block faces span ±0.5 around the block's integer position, matching the
// unit cube the demo scenes are built from. Corner order within a face is
// top-left, bottom-left, bottom-right, top-right as seen from outside.
var faceCorners = [world.FaceCount][shading.VerticesPerFace]mgl32.Vec3{
	world.FaceFront: {
		{-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5},
	},
	world.FaceBack: {
		{0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5},
	},
	world.FaceUp: {
		{-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
	},
	world.FaceDown: {
		{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, -0.5, -0.5},
	},
	world.FaceLeft: {
		{-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5},
	},
	world.FaceRight: {
		{0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5},
	},
}

// BuildChunkMesh serializes a chunk into a mesh, emitting every face of a
// solid block whose neighbor across that face is air (or outside the
// chunk). Emission order is deterministic: blocks in y,z,x order, faces in
// Front..Right order.
func BuildChunkMesh(c *world.Chunk) *Mesh {
	m := &Mesh{
		Vertices:  make([]shading.Vertex, 0, 1024),
		Indices:   make([]uint32, 0, 1536),
		FaceCodes: make([]uint32, 0, 256),
	}
	for y := 0; y < world.ChunkSizeY; y++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				b := c.GetBlock(x, y, z)
				if b == world.BlockAir {
					continue
				}
				for f := world.Face(0); f < world.FaceCount; f++ {
					if c.Neighbor(x, y, z, f) != world.BlockAir {
						continue
					}
					m.emitFace(x, y, z, f, b.Color())
				}
			}
		}
	}
	return m
}

func (m *Mesh) emitFace(x, y, z int, f world.Face, color mgl32.Vec3) {
	base := uint32(len(m.Vertices))
	pos := mgl32.Vec3{float32(x), float32(y), float32(z)}
	for _, corner := range faceCorners[f] {
		m.Vertices = append(m.Vertices, shading.Vertex{
			Position: pos.Add(corner),
			Color:    color,
		})
	}
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
	m.FaceCodes = append(m.FaceCodes, uint32(f))
}

// Validate checks the grouping invariant the shading pipeline relies on.
// The mesher upholds it by construction; this exists so callers feeding
// externally built meshes can fail loudly instead of lighting the wrong
// faces.
func (m *Mesh) Validate() error {
	if len(m.Vertices) != shading.VerticesPerFace*len(m.FaceCodes) {
		return fmt.Errorf("mesh has %d vertices for %d face codes, want %d per face",
			len(m.Vertices), len(m.FaceCodes), shading.VerticesPerFace)
	}
	if len(m.Indices) != IndicesPerFace*len(m.FaceCodes) {
		return fmt.Errorf("mesh has %d indices for %d face codes, want %d per face",
			len(m.Indices), len(m.FaceCodes), IndicesPerFace)
	}
	for i, idx := range m.Indices {
		if face := i / IndicesPerFace; int(idx)/shading.VerticesPerFace != face {
			return fmt.Errorf("index %d (value %d) escapes face %d's vertex group", i, idx, face)
		}
	}
	return nil
}
