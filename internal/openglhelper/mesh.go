package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Mesh is GPU-resident indexed geometry with the standard vertex layout:
// position (3 floats), normal (3 floats), texture coordinates (2 floats),
// interleaved.
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved vertices and indices to the GPU
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices)
	ebo := NewEBO(indices)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, 8*4, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, 8*4, 3*4)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, 8*4, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw issues the indexed draw call for the mesh. The caller is
// responsible for binding a shader and setting its uniforms first.
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all GPU resources held by the mesh
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
