// Package config handles tilemesh configuration loading and management.
package config

import "github.com/Faultbox/tilemesh/pkg/tilemesh"

// Config holds all tool settings.
type Config struct {
	Tile    TileConfig    `yaml:"tile"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TileConfig holds the tile mesh parameters.
type TileConfig struct {
	Width          float32 `yaml:"width"`
	Height         float32 `yaml:"height"`
	WidthSegments  int     `yaml:"width_segments"`
	HeightSegments int     `yaml:"height_segments"`
	Skirt          bool    `yaml:"skirt"`
	SkirtDepth     float32 `yaml:"skirt_depth"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Path string `yaml:"path"` // empty writes to stdout
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	p := tilemesh.DefaultParams()
	return &Config{
		Tile: TileConfig{
			Width:          p.Width,
			Height:         p.Height,
			WidthSegments:  p.WidthSegments,
			HeightSegments: p.HeightSegments,
			Skirt:          p.Skirt,
			SkirtDepth:     p.SkirtDepth,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Params converts the tile section into mesh parameters.
func (t TileConfig) Params() tilemesh.Params {
	return tilemesh.Params{
		Width:          t.Width,
		Height:         t.Height,
		WidthSegments:  t.WidthSegments,
		HeightSegments: t.HeightSegments,
		Skirt:          t.Skirt,
		SkirtDepth:     t.SkirtDepth,
	}
}

// Validate checks that the tile section describes a buildable mesh.
func (c *Config) Validate() error {
	return c.Tile.Params().Validate()
}
