package world

import "testing"

func TestChunkAccessAndNeighbors(t *testing.T) {
	c := NewChunk()
	c.SetBlock(0, 0, 0, BlockDirt)
	c.SetBlock(1, 0, 0, BlockStone)
	c.SetBlock(0, 1, 0, BlockStone)
	c.SetBlock(0, 0, 1, BlockStone)

	if got := c.GetBlock(0, 0, 0); got != BlockDirt {
		t.Fatalf("GetBlock(0,0,0) = %d, want dirt", got)
	}
	if got := c.Neighbor(0, 0, 0, FaceRight); got != BlockStone {
		t.Errorf("right neighbor = %d, want stone", got)
	}
	if got := c.Neighbor(0, 0, 0, FaceUp); got != BlockStone {
		t.Errorf("up neighbor = %d, want stone", got)
	}
	if got := c.Neighbor(0, 0, 0, FaceBack); got != BlockStone {
		t.Errorf("back neighbor = %d, want stone", got)
	}
	// Left, down and front step outside the chunk and must read as air.
	for _, f := range []Face{FaceLeft, FaceDown, FaceFront} {
		if got := c.Neighbor(0, 0, 0, f); got != BlockAir {
			t.Errorf("face %d neighbor out of bounds = %d, want air", f, got)
		}
	}
}

func TestChunkOutOfBounds(t *testing.T) {
	c := NewChunk()
	c.SetBlock(-1, 0, 0, BlockDirt) // ignored
	c.SetBlock(0, ChunkSizeY, 0, BlockDirt)
	if got := c.GetBlock(-1, 0, 0); got != BlockAir {
		t.Errorf("GetBlock(-1,0,0) = %d, want air", got)
	}
	if got := c.GetBlock(ChunkSizeX, ChunkSizeY, ChunkSizeZ); got != BlockAir {
		t.Errorf("GetBlock past max = %d, want air", got)
	}
}

func TestFaceOffsetsAreUnitSteps(t *testing.T) {
	seen := map[[3]int]Face{}
	for f := FaceFront; f < FaceCount; f++ {
		dx, dy, dz := f.Offset()
		if dx*dx+dy*dy+dz*dz != 1 {
			t.Errorf("face %d offset (%d,%d,%d) is not a unit step", f, dx, dy, dz)
		}
		key := [3]int{dx, dy, dz}
		if prev, dup := seen[key]; dup {
			t.Errorf("faces %d and %d share offset %v", prev, f, key)
		}
		seen[key] = f
	}
}

func TestStaircaseHeights(t *testing.T) {
	c := Staircase()
	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < ChunkSizeY; y++ {
			want := BlockAir
			if y < x {
				want = BlockDirt
			}
			if got := c.GetBlock(x, y, 0); got != want {
				t.Fatalf("staircase block (%d,%d,0) = %d, want %d", x, y, got, want)
			}
		}
	}
}
