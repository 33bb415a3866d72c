package tilemesh

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Cache shares built geometries between tiles with identical parameters.
// It is safe for concurrent use. Returned geometries are shared and must be
// treated as read-only; use Geometry.Clone before modifying one.
type Cache struct {
	mu      sync.Mutex
	entries map[Params]*Geometry
	log     *zap.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(l *zap.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[Params]*Geometry),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the geometry for p, building it on first use. Parameters are
// normalized first: without a skirt the depth is irrelevant, so the returned
// geometry's Params carry SkirtDepth 0 regardless of the requested value.
func (c *Cache) Get(p Params) (*Geometry, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("tile mesh: %w", err)
	}
	key := cacheKey(p)

	c.mu.Lock()
	defer c.mu.Unlock()

	if g, ok := c.entries[key]; ok {
		return g, nil
	}

	g, err := New(key)
	if err != nil {
		return nil, err
	}
	c.entries[key] = g

	c.log.Debug("built tile mesh",
		zap.Float32("width", p.Width),
		zap.Float32("height", p.Height),
		zap.Int("width_segments", p.WidthSegments),
		zap.Int("height_segments", p.HeightSegments),
		zap.Bool("skirt", p.Skirt),
		zap.Float32("skirt_depth", key.SkirtDepth),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("indices", len(g.Index())),
	)
	return g, nil
}

// Len returns the number of cached geometries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops all cached geometries.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// cacheKey ignores the skirt depth when no skirt is built.
func cacheKey(p Params) Params {
	if !p.Skirt {
		p.SkirtDepth = 0
	}
	return p
}
