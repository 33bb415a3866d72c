package tilemesh

// BuildPlane appends a flat grid spanning width x height in the XZ plane,
// centred on the origin at Y = 0, split into widthSegments x heightSegments
// cells of two triangles each.
//
// Vertices are emitted Z-outer, X-inner so that lattice point (ix, iz) lands
// at Grid.Index(ix, iz). V is flipped: iz = 0 maps to v = 1.
//
// b must be empty and both segment counts must be at least 1.
func BuildPlane(b *Buffers, width, height float32, widthSegments, heightSegments int) Grid {
	grid := NewGrid(widthSegments, heightSegments)

	widthHalf := width / 2
	heightHalf := height / 2
	segmentWidth := width / float32(widthSegments)
	segmentHeight := height / float32(heightSegments)

	for iz, izEnd := 0, grid.Rows; iz < izEnd; iz++ {
		z := float32(iz)*segmentHeight - heightHalf
		v := 1 - float32(iz)/float32(heightSegments)
		for ix, ixEnd := 0, grid.Columns; ix < ixEnd; ix++ {
			x := float32(ix)*segmentWidth - widthHalf
			u := float32(ix) / float32(widthSegments)
			b.pushVertex(x, 0, z, u, v)
		}
	}

	for iz, izEnd := 0, heightSegments; iz < izEnd; iz++ {
		for ix, ixEnd := 0, widthSegments; ix < ixEnd; ix++ {
			a := grid.Index(ix, iz)
			bb := grid.Index(ix, iz+1)
			c := grid.Index(ix+1, iz+1)
			d := grid.Index(ix+1, iz)

			// (a,b,d) and (b,c,d) wind towards +Y.
			b.pushTriangle(a, bb, d)
			b.pushTriangle(bb, c, d)
		}
	}

	return grid
}
