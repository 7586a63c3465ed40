// Command snapshot renders the demo chunk through the CPU shading
// pipeline and writes the frame to a PNG. It exercises the exact same
// mesher and stage functions the GPU path mirrors, so it doubles as an
// end-to-end check that needs no display or GPU.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"

	"mini-voxel/internal/config"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/shading"
	"mini-voxel/internal/softpipe"
	"mini-voxel/internal/world"
)

func main() {
	out := flag.String("out", "snapshot.png", "output PNG path")
	width := flag.Int("width", 320, "render width in pixels")
	height := flag.Int("height", 240, "render height in pixels")
	scale := flag.Int("scale", 2, "integer upscale factor for the written image")
	flag.Parse()

	if err := run(*out, *width, *height, *scale); err != nil {
		fmt.Fprintln(os.Stderr, "snapshot:", err)
		os.Exit(1)
	}
}

func run(out string, width, height, scale int) error {
	chunk := world.Staircase()
	mesh := meshing.BuildChunkMesh(chunk)
	if err := mesh.Validate(); err != nil {
		return err
	}

	proj := mgl32.Perspective(mgl32.DegToRad(config.GetFOV()),
		float32(width)/float32(height), 0.1, 1000)
	view := mgl32.LookAtV(
		mgl32.Vec3{30, 24, 30},
		mgl32.Vec3{7.5, 6, 7.5},
		mgl32.Vec3{0, 1, 0},
	)
	u := &shading.Uniforms{
		Camera: proj.Mul4(view),
		Model:  mgl32.Ident4(),
	}

	fb := softpipe.NewFramebuffer(width, height)
	fb.Clear(color.RGBA{R: 26, G: 51, B: 102, A: 255})
	softpipe.DrawIndexed(fb, mesh.Vertices, mesh.Indices, u, mesh.FaceCodes)

	img := image.Image(fb.Color)
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = dst
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d faces, %d vertices)\n", out, mesh.FaceCount(), len(mesh.Vertices))
	return nil
}
