// Package export writes tile geometry to interchange formats for inspection
// in external tools.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/tilemesh/pkg/tilemesh"
)

// WriteOBJ writes g as a Wavefront OBJ. Each draw group becomes an OBJ
// group so the plane and the skirt strips can be toggled separately.
func WriteOBJ(w io.Writer, g *tilemesh.Geometry) error {
	if g == nil || g.Buffers == nil {
		return fmt.Errorf("write obj: nil geometry")
	}
	if err := g.Buffers.Validate(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}

	bw := bufio.NewWriter(w)
	b := g.Buffers

	p := g.Params
	fmt.Fprintf(bw, "# tile %gx%g, %dx%d segments", p.Width, p.Height, p.WidthSegments, p.HeightSegments)
	if p.Skirt {
		fmt.Fprintf(bw, ", skirt depth %g", p.SkirtDepth)
	}
	fmt.Fprintf(bw, "\n# %d vertices, %d triangles\n", b.VertexCount(), b.TriangleCount())

	for i := 0; i < len(b.Positions); i += 3 {
		fmt.Fprintf(bw, "v %g %g %g\n", b.Positions[i], b.Positions[i+1], b.Positions[i+2])
	}
	for i := 0; i < len(b.UVs); i += 2 {
		fmt.Fprintf(bw, "vt %g %g\n", b.UVs[i], b.UVs[i+1])
	}
	for i := 0; i < len(b.Normals); i += 3 {
		fmt.Fprintf(bw, "vn %g %g %g\n", b.Normals[i], b.Normals[i+1], b.Normals[i+2])
	}

	for _, grp := range g.Groups {
		fmt.Fprintf(bw, "g %s\n", grp.Name)
		for i := grp.StartIndex; i < grp.StartIndex+grp.IndexCount; i += 3 {
			// OBJ indices are 1-based.
			a, bb, c := b.Indices[i]+1, b.Indices[i+1]+1, b.Indices[i+2]+1
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, bb, bb, bb, c, c, c)
		}
	}

	return bw.Flush()
}
