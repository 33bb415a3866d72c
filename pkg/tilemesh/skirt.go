package tilemesh

// Edge identifies one side of a tile.
type Edge int

// Skirt strips are always built in this order.
const (
	EdgeNegZ Edge = iota
	EdgePosZ
	EdgeNegX
	EdgePosX
)

// String returns a short axis label.
func (e Edge) String() string {
	switch e {
	case EdgeNegZ:
		return "-z"
	case EdgePosZ:
		return "+z"
	case EdgeNegX:
		return "-x"
	case EdgePosX:
		return "+x"
	default:
		return "unknown"
	}
}

// Strip records where one skirt strip landed in the buffers.
type Strip struct {
	Edge        Edge
	VertexStart int
	VertexCount int
	IndexStart  int
	IndexCount  int
}

// edgeSpec parametrizes one skirt strip.
type edgeSpec struct {
	edge     Edge
	alongX   bool    // strip runs along X (a Z edge) or along Z (an X edge)
	fixed    float32 // the constant Z (alongX) or X coordinate
	fixedUV  float32 // the constant V (alongX) or U component
	line     int     // grid row (alongX) or column stitched to
	reversed bool    // emit (d,b,a),(d,c,b) instead of (a,b,d),(b,c,d)
}

// BuildSkirt appends four vertical strips hanging skirtDepth below the edges
// of a plane previously built into b by BuildPlane with the same arguments.
// Strips are appended in -Z, +Z, -X, +X order and each is stitched to the
// matching boundary row or column of the plane so that its faces point away
// from the tile. Skirt vertices keep the up normal of the plane.
//
// Boundary vertices are addressed with Grid.Index, so the -X strip joins
// column 0 and the +X strip joins column widthSegments for any grid shape.
// On square grids this equals the older iz*(heightSegments+1) addressing;
// on rectangular grids that form lands on the wrong vertices.
func BuildSkirt(b *Buffers, width, height float32, widthSegments, heightSegments int, skirtDepth float32) []Strip {
	grid := NewGrid(widthSegments, heightSegments)

	widthHalf := width / 2
	heightHalf := height / 2
	segmentWidth := width / float32(widthSegments)
	segmentHeight := height / float32(heightSegments)

	edges := [4]edgeSpec{
		{edge: EdgeNegZ, alongX: true, fixed: -heightHalf, fixedUV: 1, line: 0, reversed: true},
		{edge: EdgePosZ, alongX: true, fixed: float32(heightSegments)*segmentHeight - heightHalf, fixedUV: 0, line: heightSegments},
		{edge: EdgeNegX, fixed: -widthHalf, fixedUV: 0, line: 0},
		{edge: EdgePosX, fixed: float32(widthSegments)*segmentWidth - widthHalf, fixedUV: 1, line: widthSegments, reversed: true},
	}

	strips := make([]Strip, 0, len(edges))
	for _, e := range edges {
		start := b.VertexCount()
		indexStart := len(b.Indices)

		segments := heightSegments
		if e.alongX {
			segments = widthSegments
		}

		for i, iEnd := 0, segments+1; i < iEnd; i++ {
			if e.alongX {
				x := float32(i)*segmentWidth - widthHalf
				b.pushVertex(x, -skirtDepth, e.fixed, float32(i)/float32(widthSegments), e.fixedUV)
			} else {
				z := float32(i)*segmentHeight - heightHalf
				b.pushVertex(e.fixed, -skirtDepth, z, e.fixedUV, 1-float32(i)/float32(heightSegments))
			}
		}

		boundary := func(i int) int {
			if e.alongX {
				return grid.Index(i, e.line)
			}
			return grid.Index(e.line, i)
		}

		for i, iEnd := 0, segments; i < iEnd; i++ {
			a := boundary(i)
			bb := start + i
			c := start + i + 1
			d := boundary(i + 1)

			if e.reversed {
				b.pushTriangle(d, bb, a)
				b.pushTriangle(d, c, bb)
			} else {
				b.pushTriangle(a, bb, d)
				b.pushTriangle(bb, c, d)
			}
		}

		strips = append(strips, Strip{
			Edge:        e.edge,
			VertexStart: start,
			VertexCount: b.VertexCount() - start,
			IndexStart:  indexStart,
			IndexCount:  len(b.Indices) - indexStart,
		})
	}

	return strips
}
