package config

import "flag"

var (
	flagConfig         = flag.String("config", "", "Path to config file")
	flagDebug          = flag.Bool("debug", false, "Enable debug logging")
	flagWidth          = flag.Float64("width", 0, "Tile width along X")
	flagHeight         = flag.Float64("height", 0, "Tile height along Z")
	flagWidthSegments  = flag.Int("width-segments", 0, "Grid cells along X")
	flagHeightSegments = flag.Int("height-segments", 0, "Grid cells along Z")
	flagSkirt          = flag.Bool("skirt", false, "Build a skirt around the tile edges")
	flagNoSkirt        = flag.Bool("no-skirt", false, "Disable the skirt even if configured")
	flagSkirtDepth     = flag.Float64("skirt-depth", 0, "Skirt depth below the tile surface")
	flagOutput         = flag.String("o", "", "Output file for exports")
	flagLogFile        = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
// Zero values mean "not set" and leave the config untouched. Any other value,
// negative included, is applied and left for Validate to reject.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth != 0 {
		cfg.Tile.Width = float32(*flagWidth)
	}
	if *flagHeight != 0 {
		cfg.Tile.Height = float32(*flagHeight)
	}
	if *flagWidthSegments != 0 {
		cfg.Tile.WidthSegments = *flagWidthSegments
	}
	if *flagHeightSegments != 0 {
		cfg.Tile.HeightSegments = *flagHeightSegments
	}
	if *flagSkirt {
		cfg.Tile.Skirt = true
	}
	if *flagNoSkirt {
		cfg.Tile.Skirt = false
	}
	if *flagSkirtDepth != 0 {
		cfg.Tile.SkirtDepth = float32(*flagSkirtDepth)
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
