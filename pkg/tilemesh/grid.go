package tilemesh

// Grid describes the row-major vertex lattice of a tile plane.
// Rows run along Z, columns along X.
type Grid struct {
	Columns int // widthSegments + 1
	Rows    int // heightSegments + 1
}

// NewGrid returns the lattice for the given segment counts.
func NewGrid(widthSegments, heightSegments int) Grid {
	return Grid{Columns: widthSegments + 1, Rows: heightSegments + 1}
}

// Index returns the vertex buffer position of lattice point (ix, iz).
func (g Grid) Index(ix, iz int) int {
	return ix + g.Columns*iz
}

// VertexCount returns the number of lattice points.
func (g Grid) VertexCount() int {
	return g.Columns * g.Rows
}

// WidthSegments returns the number of cells along X.
func (g Grid) WidthSegments() int {
	return g.Columns - 1
}

// HeightSegments returns the number of cells along Z.
func (g Grid) HeightSegments() int {
	return g.Rows - 1
}

// PlaneVertexCount returns (W+1)(H+1).
func PlaneVertexCount(widthSegments, heightSegments int) int {
	return (widthSegments + 1) * (heightSegments + 1)
}

// PlaneIndexCount returns 6WH: two triangles per cell.
func PlaneIndexCount(widthSegments, heightSegments int) int {
	return 6 * widthSegments * heightSegments
}

// SkirtVertexCount returns the vertices added by the four skirt strips.
func SkirtVertexCount(widthSegments, heightSegments int) int {
	return 2*(widthSegments+1) + 2*(heightSegments+1)
}

// SkirtIndexCount returns the indices added by the four skirt strips.
func SkirtIndexCount(widthSegments, heightSegments int) int {
	return 6*widthSegments + 6*heightSegments
}
