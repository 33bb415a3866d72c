// Package gpu attaches tile geometry to OpenGL buffer objects.
// All functions except Layouts require a current GL context.
package gpu

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tilemesh/pkg/tilemesh"
)

// ErrEmptyGeometry is returned when there is nothing to upload.
var ErrEmptyGeometry = errors.New("geometry has no triangles")

// Layout binds a named geometry attribute to a shader location.
type Layout struct {
	Name     string
	Location uint32
	Size     int32 // floats per vertex
}

// Layouts returns the attribute locations shaders should declare.
func Layouts() []Layout {
	return []Layout{
		{Name: tilemesh.AttrPosition, Location: 0, Size: tilemesh.PositionSize},
		{Name: tilemesh.AttrNormal, Location: 1, Size: tilemesh.NormalSize},
		{Name: tilemesh.AttrUV, Location: 2, Size: tilemesh.UVSize},
	}
}

// Mesh is an uploaded tile geometry.
type Mesh struct {
	vao        uint32
	vbos       []uint32
	ebo        uint32
	indexCount int32
	groups     []tilemesh.Group
}

// Upload creates a VAO with one VBO per attribute plus an index buffer.
func Upload(g *tilemesh.Geometry) (*Mesh, error) {
	if err := checkUploadable(g); err != nil {
		return nil, err
	}

	m := &Mesh{
		indexCount: int32(len(g.Index())),
		groups:     g.Groups,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	for _, layout := range Layouts() {
		attr, ok := g.Attribute(layout.Name)
		if !ok {
			m.Delete()
			return nil, fmt.Errorf("geometry missing %q attribute", layout.Name)
		}

		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(attr.Array)*4, gl.Ptr(attr.Array), gl.STATIC_DRAW)

		gl.VertexAttribPointerWithOffset(layout.Location, layout.Size, gl.FLOAT, false, layout.Size*4, 0)
		gl.EnableVertexAttribArray(layout.Location)
		m.vbos = append(m.vbos, vbo)
	}

	indices := g.Index()
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return m, nil
}

func checkUploadable(g *tilemesh.Geometry) error {
	if g == nil || g.Buffers == nil || len(g.Index()) == 0 {
		return ErrEmptyGeometry
	}
	if err := g.Buffers.Validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	return nil
}

// Groups returns the draw ranges of the uploaded geometry.
func (m *Mesh) Groups() []tilemesh.Group {
	return m.groups
}

// Draw draws every triangle.
func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// DrawGroup draws one index range, for example only the plane or one skirt strip.
func (m *Mesh) DrawGroup(g tilemesh.Group) {
	if m.vao == 0 || g.IndexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(g.IndexCount), gl.UNSIGNED_INT, gl.PtrOffset(g.StartIndex*4))
	gl.BindVertexArray(0)
}

// Delete releases GPU resources.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if len(m.vbos) > 0 {
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		m.vbos = nil
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
