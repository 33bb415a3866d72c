// Package tilemesh builds the vertex, normal, UV and index buffers for
// rectangular terrain tiles: a subdivided flat plane with an optional skirt
// hanging from its edges to hide seams between neighbouring tiles.
package tilemesh

import (
	"errors"
	"fmt"
)

var (
	ErrBufferMismatch  = errors.New("vertex buffers disagree on vertex count")
	ErrIndexOutOfRange = errors.New("index refers to missing vertex")
)

// Component counts per vertex.
const (
	PositionSize = 3
	NormalSize   = 3
	UVSize       = 2
)

// Buffers holds flat, append-only mesh data for a single tile.
// Vertex i occupies Positions[3i:3i+3], Normals[3i:3i+3] and UVs[2i:2i+2].
type Buffers struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

// NewBuffers returns empty buffers with room for the given vertex and index counts.
func NewBuffers(vertexCap, indexCap int) *Buffers {
	return &Buffers{
		Positions: make([]float32, 0, vertexCap*PositionSize),
		Normals:   make([]float32, 0, vertexCap*NormalSize),
		UVs:       make([]float32, 0, vertexCap*UVSize),
		Indices:   make([]uint32, 0, indexCap),
	}
}

// VertexCount returns the number of vertices appended so far.
func (b *Buffers) VertexCount() int {
	return len(b.Positions) / PositionSize
}

// TriangleCount returns the number of complete triangles in the index buffer.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// pushVertex appends one vertex with an up-facing normal.
func (b *Buffers) pushVertex(x, y, z, u, v float32) {
	b.Positions = append(b.Positions, x, y, z)
	b.Normals = append(b.Normals, 0, 1, 0)
	b.UVs = append(b.UVs, u, v)
}

func (b *Buffers) pushTriangle(i0, i1, i2 int) {
	b.Indices = append(b.Indices, uint32(i0), uint32(i1), uint32(i2))
}

// Validate checks the buffer invariants: equal vertex cardinality across
// positions, normals and UVs, whole triangles, and in-range indices.
func (b *Buffers) Validate() error {
	if len(b.Positions)%PositionSize != 0 {
		return fmt.Errorf("%w: %d position floats", ErrBufferMismatch, len(b.Positions))
	}
	n := b.VertexCount()
	if len(b.Normals) != n*NormalSize {
		return fmt.Errorf("%w: %d vertices, %d normal floats", ErrBufferMismatch, n, len(b.Normals))
	}
	if len(b.UVs) != n*UVSize {
		return fmt.Errorf("%w: %d vertices, %d uv floats", ErrBufferMismatch, n, len(b.UVs))
	}
	if len(b.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrBufferMismatch, len(b.Indices))
	}
	for i, idx := range b.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: indices[%d] = %d, vertex count %d", ErrIndexOutOfRange, i, idx, n)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (b *Buffers) Clone() *Buffers {
	return &Buffers{
		Positions: append([]float32(nil), b.Positions...),
		Normals:   append([]float32(nil), b.Normals...),
		UVs:       append([]float32(nil), b.UVs...),
		Indices:   append([]uint32(nil), b.Indices...),
	}
}
