package tilemesh

import (
	"errors"
	"fmt"
	"math"

	tmath "github.com/Faultbox/tilemesh/pkg/math"
)

var (
	ErrInvalidSegments   = errors.New("segment counts must be at least 1")
	ErrInvalidDimensions = errors.New("tile dimensions must be positive and finite")
	ErrInvalidSkirtDepth = errors.New("skirt depth must be finite")
)

// Named vertex attributes exposed to renderers.
const (
	AttrPosition = "position"
	AttrNormal   = "normal"
	AttrUV       = "uv"
)

// Draw group names.
const (
	GroupPlane = "plane"
	GroupSkirt = "skirt"
)

// Params configures a tile mesh.
type Params struct {
	Width          float32
	Height         float32
	WidthSegments  int
	HeightSegments int
	Skirt          bool
	SkirtDepth     float32 // skirt vertices sit at Y = -SkirtDepth
}

// DefaultParams returns a unit tile with a single cell and no skirt.
func DefaultParams() Params {
	return Params{
		Width:          1,
		Height:         1,
		WidthSegments:  1,
		HeightSegments: 1,
		Skirt:          false,
		SkirtDepth:     10,
	}
}

// Validate reports whether the parameters can produce a mesh.
func (p Params) Validate() error {
	if p.WidthSegments < 1 || p.HeightSegments < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSegments, p.WidthSegments, p.HeightSegments)
	}
	if !positiveFinite(p.Width) || !positiveFinite(p.Height) {
		return fmt.Errorf("%w: got %gx%g", ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.Skirt && !finite(p.SkirtDepth) {
		return fmt.Errorf("%w: got %g", ErrInvalidSkirtDepth, p.SkirtDepth)
	}
	return nil
}

// VertexCount returns the final vertex count for these parameters.
func (p Params) VertexCount() int {
	n := PlaneVertexCount(p.WidthSegments, p.HeightSegments)
	if p.Skirt {
		n += SkirtVertexCount(p.WidthSegments, p.HeightSegments)
	}
	return n
}

// IndexCount returns the final index count for these parameters.
func (p Params) IndexCount() int {
	n := PlaneIndexCount(p.WidthSegments, p.HeightSegments)
	if p.Skirt {
		n += SkirtIndexCount(p.WidthSegments, p.HeightSegments)
	}
	return n
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func positiveFinite(f float32) bool {
	return finite(f) && f > 0
}

// Attribute is a named per-vertex float array.
type Attribute struct {
	Name     string
	ItemSize int
	Array    []float32
}

// Count returns the number of vertices the attribute covers.
func (a Attribute) Count() int {
	if a.ItemSize == 0 {
		return 0
	}
	return len(a.Array) / a.ItemSize
}

// Group is a contiguous index range that can be drawn on its own.
type Group struct {
	Name       string
	StartIndex int
	IndexCount int
}

// Vertex is one interleaved vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Geometry is a finished tile mesh.
type Geometry struct {
	Params  Params
	Grid    Grid
	Buffers *Buffers
	Groups  []Group
	Strips  []Strip
}

// New builds a tile mesh. Parameters are validated before any buffer is
// allocated.
func New(p Params) (*Geometry, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("tile mesh: %w", err)
	}

	b := NewBuffers(p.VertexCount(), p.IndexCount())
	grid := BuildPlane(b, p.Width, p.Height, p.WidthSegments, p.HeightSegments)

	g := &Geometry{
		Params:  p,
		Grid:    grid,
		Buffers: b,
		Groups: []Group{{
			Name:       GroupPlane,
			StartIndex: 0,
			IndexCount: len(b.Indices),
		}},
	}

	if p.Skirt {
		g.Strips = BuildSkirt(b, p.Width, p.Height, p.WidthSegments, p.HeightSegments, p.SkirtDepth)
		for _, s := range g.Strips {
			g.Groups = append(g.Groups, Group{
				Name:       GroupSkirt + s.Edge.String(),
				StartIndex: s.IndexStart,
				IndexCount: s.IndexCount,
			})
		}
	}

	return g, nil
}

// Must is like New but panics on invalid parameters.
func Must(p Params) *Geometry {
	g, err := New(p)
	if err != nil {
		panic(err)
	}
	return g
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return g.Buffers.VertexCount()
}

// Attributes returns position, normal and uv in that order.
func (g *Geometry) Attributes() []Attribute {
	return []Attribute{
		{Name: AttrPosition, ItemSize: PositionSize, Array: g.Buffers.Positions},
		{Name: AttrNormal, ItemSize: NormalSize, Array: g.Buffers.Normals},
		{Name: AttrUV, ItemSize: UVSize, Array: g.Buffers.UVs},
	}
}

// Attribute looks up a vertex attribute by name.
func (g *Geometry) Attribute(name string) (Attribute, bool) {
	for _, a := range g.Attributes() {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Index returns the triangle index list.
func (g *Geometry) Index() []uint32 {
	return g.Buffers.Indices
}

// Position returns the position of vertex i.
func (g *Geometry) Position(i int) tmath.Vec3 {
	p := g.Buffers.Positions[i*PositionSize:]
	return tmath.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// UV returns the texture coordinate of vertex i.
func (g *Geometry) UV(i int) tmath.Vec2 {
	uv := g.Buffers.UVs[i*UVSize:]
	return tmath.Vec2{X: uv[0], Y: uv[1]}
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (g *Geometry) Bounds() tmath.Box3 {
	box := tmath.EmptyBox3()
	for i, iEnd := 0, g.VertexCount(); i < iEnd; i++ {
		box = box.Expand(g.Position(i))
	}
	return box
}

// Interleave packs the attributes into one vertex array.
func (g *Geometry) Interleave() []Vertex {
	b := g.Buffers
	vertices := make([]Vertex, b.VertexCount())
	for i := range vertices {
		copy(vertices[i].Position[:], b.Positions[i*PositionSize:])
		copy(vertices[i].Normal[:], b.Normals[i*NormalSize:])
		copy(vertices[i].TexCoord[:], b.UVs[i*UVSize:])
	}
	return vertices
}

// Clone returns a deep copy that can be modified independently.
func (g *Geometry) Clone() *Geometry {
	return &Geometry{
		Params:  g.Params,
		Grid:    g.Grid,
		Buffers: g.Buffers.Clone(),
		Groups:  append([]Group(nil), g.Groups...),
		Strips:  append([]Strip(nil), g.Strips...),
	}
}
