// Package world holds the voxel data model the mesher reads: block types,
// the fixed-size chunk grid, and the six face directions whose numeric
// values double as the face orientation codes consumed by the shading
// pipeline.
package world

import "github.com/go-gl/mathgl/mgl32"

// Chunk dimensions in blocks.
const (
	ChunkSizeX = 16
	ChunkSizeY = 16
	ChunkSizeZ = 16
)

// Block is a voxel type.
type Block uint8

const (
	BlockAir Block = iota
	BlockDirt
	BlockStone
)

// Color returns the vertex color used for this block's faces.
func (b Block) Color() mgl32.Vec3 {
	switch b {
	case BlockDirt:
		return mgl32.Vec3{0.5, 0.5, 0.5}
	default:
		return mgl32.Vec3{1.0, 0.1, 0.1}
	}
}

// Face identifies one of the six cube face directions. The numeric values
// are the wire format of the face-code buffer: the shading stage maps
// Front/Back to the dark tier, Up/Down to the mid tier and Left/Right to
// the bright tier, and treats anything outside 0..5 as invalid.
type Face uint32

const (
	FaceFront Face = iota // -Z
	FaceBack              // +Z
	FaceUp                // +Y
	FaceDown              // -Y
	FaceLeft              // -X
	FaceRight             // +X
)

// FaceCount is the number of meaningful face codes.
const FaceCount = 6

// Offset returns the block-grid step towards the neighbor this face looks at.
func (f Face) Offset() (dx, dy, dz int) {
	switch f {
	case FaceFront:
		return 0, 0, -1
	case FaceBack:
		return 0, 0, 1
	case FaceUp:
		return 0, 1, 0
	case FaceDown:
		return 0, -1, 0
	case FaceLeft:
		return -1, 0, 0
	default:
		return 1, 0, 0
	}
}

// Chunk is a fixed 16x16x16 block grid. The zero value is all air.
type Chunk struct {
	blocks [ChunkSizeY][ChunkSizeZ][ChunkSizeX]Block
}

// NewChunk returns an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// InBounds reports whether (x, y, z) addresses a block inside the chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX &&
		y >= 0 && y < ChunkSizeY &&
		z >= 0 && z < ChunkSizeZ
}

// GetBlock returns the block at (x, y, z). Out-of-bounds coordinates read
// as air, so faces on the chunk border count as exposed.
func (c *Chunk) GetBlock(x, y, z int) Block {
	if !InBounds(x, y, z) {
		return BlockAir
	}
	return c.blocks[y][z][x]
}

// SetBlock places a block at (x, y, z). Out-of-bounds writes are ignored.
func (c *Chunk) SetBlock(x, y, z int, b Block) {
	if !InBounds(x, y, z) {
		return
	}
	c.blocks[y][z][x] = b
}

// Neighbor returns the block adjacent to (x, y, z) across the given face.
func (c *Chunk) Neighbor(x, y, z int, f Face) Block {
	dx, dy, dz := f.Offset()
	return c.GetBlock(x+dx, y+dy, z+dz)
}

// Staircase fills a chunk with the test pattern the demo scene uses:
// every column is as tall as its x coordinate, giving exposed faces in
// all six directions.
func Staircase() *Chunk {
	c := NewChunk()
	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < x; y++ {
			for z := 0; z < ChunkSizeZ; z++ {
				c.SetBlock(x, y, z, BlockDirt)
			}
		}
	}
	return c
}
