// Package chunks implements chunk rendering: it uploads the mesher's
// vertex, index and face-code buffers and drives the chunk shader pair.
// Face codes live in a texture buffer (the GL 4.1 core stand-in for a
// read-only storage buffer) so the fragment stage can index them by the
// flat face identifier.
package chunks

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/graphics"
	"mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

// Chunks implements chunk mesh rendering
type Chunks struct {
	chunk  *world.Chunk
	model  mgl32.Mat4
	shader *graphics.Shader

	vao        uint32
	vbo        uint32
	ebo        uint32
	faceBuf    uint32 // backing buffer for the face-code texture
	faceTex    uint32 // usamplerBuffer view over faceBuf
	indexCount int32
	dirty      bool
}

// NewChunks creates a renderable for one chunk with the given model transform
func NewChunks(chunk *world.Chunk, model mgl32.Mat4) *Chunks {
	return &Chunks{
		chunk: chunk,
		model: model,
		dirty: true,
	}
}

// Init compiles the shader pair and creates the GPU objects
func (c *Chunks) Init() error {
	var err error
	c.shader, err = graphics.NewShader(chunkVertSrc, chunkFragSrc)
	if err != nil {
		return fmt.Errorf("chunk shader: %v", err)
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.GenBuffers(1, &c.ebo)
	gl.GenBuffers(1, &c.faceBuf)
	gl.GenTextures(1, &c.faceTex)

	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)

	// Interleaved {position vec3, color vec3}, tightly packed.
	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
	return nil
}

// MarkDirty forces a mesh rebuild on the next frame
func (c *Chunks) MarkDirty() {
	c.dirty = true
}

func (c *Chunks) uploadMesh() error {
	defer profiling.Track("chunks.uploadMesh")()

	mesh := meshing.BuildChunkMesh(c.chunk)
	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("chunk mesh: %v", err)
	}
	c.indexCount = int32(len(mesh.Indices))
	if c.indexCount == 0 {
		return nil
	}

	data := mesh.VertexData()
	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	// One R32UI texel per face, indexed by vFace in the fragment shader.
	gl.BindBuffer(gl.TEXTURE_BUFFER, c.faceBuf)
	gl.BufferData(gl.TEXTURE_BUFFER, len(mesh.FaceCodes)*4, gl.Ptr(mesh.FaceCodes), gl.STATIC_DRAW)
	gl.BindTexture(gl.TEXTURE_BUFFER, c.faceTex)
	gl.TexBuffer(gl.TEXTURE_BUFFER, gl.R32UI, c.faceBuf)
	gl.BindBuffer(gl.TEXTURE_BUFFER, 0)

	return nil
}

// Render draws the chunk mesh
func (c *Chunks) Render(ctx renderer.RenderContext) {
	if c.dirty {
		if err := c.uploadMesh(); err != nil {
			fmt.Println("chunks:", err)
			return
		}
		c.dirty = false
	}
	if c.indexCount == 0 {
		return
	}

	c.shader.Use()
	camera := ctx.CameraMatrix()
	c.shader.SetMatrix4("uCamera", &camera[0])
	c.shader.SetMatrix4("uModel", &c.model[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_BUFFER, c.faceTex)
	c.shader.SetInt("uFaceCodes", 0)

	gl.BindVertexArray(c.vao)
	gl.DrawElements(gl.TRIANGLES, c.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Dispose cleans up GPU resources
func (c *Chunks) Dispose() {
	if c.shader != nil {
		c.shader.Delete()
	}
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.ebo != 0 {
		gl.DeleteBuffers(1, &c.ebo)
	}
	if c.faceBuf != 0 {
		gl.DeleteBuffers(1, &c.faceBuf)
	}
	if c.faceTex != 0 {
		gl.DeleteTextures(1, &c.faceTex)
	}
}
