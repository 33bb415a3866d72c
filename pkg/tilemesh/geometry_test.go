package tilemesh

import (
	"errors"
	"math"
	"slices"
	"testing"

	tmath "github.com/Faultbox/tilemesh/pkg/math"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	if p.Width != 1 || p.Height != 1 {
		t.Errorf("expected 1x1 tile, got %gx%g", p.Width, p.Height)
	}
	if p.WidthSegments != 1 || p.HeightSegments != 1 {
		t.Errorf("expected 1x1 segments, got %dx%d", p.WidthSegments, p.HeightSegments)
	}
	if p.Skirt {
		t.Error("expected skirt to be disabled by default")
	}
	if p.SkirtDepth != 10 {
		t.Errorf("expected skirt depth 10, got %g", p.SkirtDepth)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default params invalid: %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"valid", func(p *Params) {}, nil},
		{"zero width segments", func(p *Params) { p.WidthSegments = 0 }, ErrInvalidSegments},
		{"negative height segments", func(p *Params) { p.HeightSegments = -2 }, ErrInvalidSegments},
		{"zero width", func(p *Params) { p.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(p *Params) { p.Height = -1 }, ErrInvalidDimensions},
		{"nan width", func(p *Params) { p.Width = nan }, ErrInvalidDimensions},
		{"infinite height", func(p *Params) { p.Height = inf }, ErrInvalidDimensions},
		{"nan skirt depth", func(p *Params) { p.Skirt = true; p.SkirtDepth = nan }, ErrInvalidSkirtDepth},
		{"nan depth without skirt", func(p *Params) { p.SkirtDepth = nan }, nil},
		{"negative skirt depth", func(p *Params) { p.Skirt = true; p.SkirtDepth = -5 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)

			err := p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.WidthSegments = 0

	g, err := New(p)
	if err == nil {
		t.Fatal("expected error for zero segments")
	}
	if g != nil {
		t.Error("expected nil geometry on error")
	}
	if !errors.Is(err, ErrInvalidSegments) {
		t.Errorf("expected ErrInvalidSegments, got %v", err)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Must to panic on invalid params")
		}
	}()
	Must(Params{})
}

func TestNewAttributes(t *testing.T) {
	g := Must(Params{Width: 2, Height: 2, WidthSegments: 2, HeightSegments: 2})

	tests := []struct {
		name     string
		itemSize int
	}{
		{AttrPosition, 3},
		{AttrNormal, 3},
		{AttrUV, 2},
	}

	for _, tt := range tests {
		attr, ok := g.Attribute(tt.name)
		if !ok {
			t.Errorf("missing attribute %q", tt.name)
			continue
		}
		if attr.ItemSize != tt.itemSize {
			t.Errorf("%s: item size %d, want %d", tt.name, attr.ItemSize, tt.itemSize)
		}
		if attr.Count() != 9 {
			t.Errorf("%s: count %d, want 9", tt.name, attr.Count())
		}
	}

	if _, ok := g.Attribute("color"); ok {
		t.Error("unexpected color attribute")
	}

	names := make([]string, 0, 3)
	for _, a := range g.Attributes() {
		names = append(names, a.Name)
	}
	if !slices.Equal(names, []string{AttrPosition, AttrNormal, AttrUV}) {
		t.Errorf("attribute order = %v", names)
	}

	if len(g.Index()) != 24 {
		t.Errorf("expected 24 indices, got %d", len(g.Index()))
	}
	if g.Position(4) != (tmath.Vec3{}) {
		t.Errorf("center vertex = %v, want origin", g.Position(4))
	}
}

func TestNewWithSkirt(t *testing.T) {
	p := Params{Width: 4, Height: 2, WidthSegments: 4, HeightSegments: 2, Skirt: true, SkirtDepth: 3}
	g := Must(p)

	if g.VertexCount() != p.VertexCount() {
		t.Errorf("vertex count %d, want %d", g.VertexCount(), p.VertexCount())
	}
	if g.VertexCount() != 15+10+6 {
		t.Errorf("vertex count %d, want 31", g.VertexCount())
	}
	if len(g.Index()) != p.IndexCount() || len(g.Index()) != 48+24+12 {
		t.Errorf("index count %d, want %d", len(g.Index()), p.IndexCount())
	}
	if err := g.Buffers.Validate(); err != nil {
		t.Errorf("invalid buffers: %v", err)
	}

	// Buffers were sized exactly up front.
	if cap(g.Buffers.Positions) != len(g.Buffers.Positions) {
		t.Errorf("positions grew past preallocation: len %d cap %d", len(g.Buffers.Positions), cap(g.Buffers.Positions))
	}
	if cap(g.Buffers.Indices) != len(g.Buffers.Indices) {
		t.Errorf("indices grew past preallocation: len %d cap %d", len(g.Buffers.Indices), cap(g.Buffers.Indices))
	}

	wantGroups := []Group{
		{Name: "plane", StartIndex: 0, IndexCount: 48},
		{Name: "skirt-z", StartIndex: 48, IndexCount: 24},
		{Name: "skirt+z", StartIndex: 72, IndexCount: 24},
		{Name: "skirt-x", StartIndex: 96, IndexCount: 12},
		{Name: "skirt+x", StartIndex: 108, IndexCount: 12},
	}
	if !slices.Equal(g.Groups, wantGroups) {
		t.Errorf("groups:\n got %+v\nwant %+v", g.Groups, wantGroups)
	}
	if len(g.Strips) != 4 {
		t.Errorf("expected 4 strips, got %d", len(g.Strips))
	}
}

func TestNewWithoutSkirt(t *testing.T) {
	g := Must(Params{Width: 1, Height: 1, WidthSegments: 3, HeightSegments: 3, SkirtDepth: 10})

	if len(g.Strips) != 0 {
		t.Errorf("expected no strips, got %d", len(g.Strips))
	}
	if len(g.Groups) != 1 || g.Groups[0].Name != GroupPlane {
		t.Errorf("expected single plane group, got %+v", g.Groups)
	}
}

func TestNewIdempotent(t *testing.T) {
	p := Params{Width: 7, Height: 3, WidthSegments: 5, HeightSegments: 4, Skirt: true, SkirtDepth: 2.5}
	a := Must(p)
	b := Must(p)

	if !slices.Equal(a.Buffers.Positions, b.Buffers.Positions) {
		t.Error("positions differ between builds")
	}
	if !slices.Equal(a.Buffers.Normals, b.Buffers.Normals) {
		t.Error("normals differ between builds")
	}
	if !slices.Equal(a.Buffers.UVs, b.Buffers.UVs) {
		t.Error("uvs differ between builds")
	}
	if !slices.Equal(a.Buffers.Indices, b.Buffers.Indices) {
		t.Error("indices differ between builds")
	}
}

func TestGeometryBounds(t *testing.T) {
	g := Must(Params{Width: 4, Height: 6, WidthSegments: 2, HeightSegments: 3, Skirt: true, SkirtDepth: 5})
	box := g.Bounds()

	wantMin := tmath.Vec3{X: -2, Y: -5, Z: -3}
	wantMax := tmath.Vec3{X: 2, Y: 0, Z: 3}
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("bounds = %v..%v, want %v..%v", box.Min, box.Max, wantMin, wantMax)
	}

	flat := Must(Params{Width: 4, Height: 6, WidthSegments: 2, HeightSegments: 3})
	if size := flat.Bounds().Size(); size != (tmath.Vec3{X: 4, Y: 0, Z: 6}) {
		t.Errorf("flat tile size = %v", size)
	}
}

func TestGeometryInterleave(t *testing.T) {
	g := Must(Params{Width: 2, Height: 2, WidthSegments: 1, HeightSegments: 1, Skirt: true, SkirtDepth: 1})
	vertices := g.Interleave()

	if len(vertices) != g.VertexCount() {
		t.Fatalf("interleaved %d vertices, want %d", len(vertices), g.VertexCount())
	}

	first := vertices[0]
	if first.Position != [3]float32{-1, 0, -1} {
		t.Errorf("vertex 0 position = %v", first.Position)
	}
	if first.Normal != [3]float32{0, 1, 0} {
		t.Errorf("vertex 0 normal = %v", first.Normal)
	}
	if first.TexCoord != [2]float32{0, 1} {
		t.Errorf("vertex 0 uv = %v", first.TexCoord)
	}

	last := vertices[len(vertices)-1]
	if last.Position != [3]float32{1, -1, 1} {
		t.Errorf("last vertex position = %v", last.Position)
	}
	if last.TexCoord != [2]float32{1, 0} {
		t.Errorf("last vertex uv = %v", last.TexCoord)
	}
}

func TestGeometryClone(t *testing.T) {
	g := Must(Params{Width: 1, Height: 1, WidthSegments: 2, HeightSegments: 2, Skirt: true, SkirtDepth: 1})
	c := g.Clone()

	c.Buffers.Positions[0] = 99
	c.Buffers.Indices[0] = 7
	c.Groups[0].Name = "changed"

	if g.Buffers.Positions[0] == 99 || g.Buffers.Indices[0] == 7 {
		t.Error("clone shares buffers with original")
	}
	if g.Groups[0].Name != GroupPlane {
		t.Error("clone shares groups with original")
	}
}
