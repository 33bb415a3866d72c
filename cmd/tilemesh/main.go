// tilemesh builds terrain tile meshes and reports on or exports them.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/tilemesh/internal/config"
	"github.com/Faultbox/tilemesh/internal/export"
	"github.com/Faultbox/tilemesh/internal/logger"
	"github.com/Faultbox/tilemesh/pkg/tilemesh"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := args[0]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.Format = cfg.Logging.Format
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(command, cfg, os.Stdout); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `tilemesh - terrain tile mesh generator

Usage:
  tilemesh [flags] <command>

Commands:
  info      Show vertex/triangle counts, bounds and skirt strips
  groups    Show draw groups (index ranges)
  obj       Export the tile as Wavefront OBJ (stdout or -o file)
  init      Write the resolved config to -config or the user config dir

Flags:
  -config <file>         Config file (default ./tilemesh.yaml)
  -width, -height        Tile size
  -width-segments N      Cells along X
  -height-segments N     Cells along Z
  -skirt / -no-skirt     Toggle the edge skirt
  -skirt-depth D         Skirt depth below the surface
  -o <file>              Output file for obj
  -debug                 Debug logging

Examples:
  tilemesh -width-segments 16 -height-segments 16 info
  tilemesh -skirt -skirt-depth 5 -o tile.obj obj`)
}

// run executes one command against the configured tile.
func run(command string, cfg *config.Config, stdout io.Writer) error {
	if command == "init" {
		return cmdInit(stdout, cfg, config.ConfigPath())
	}

	cache := tilemesh.NewCache(tilemesh.WithLogger(logger.Named("cache")))

	g, err := cache.Get(cfg.Tile.Params())
	if err != nil {
		return err
	}

	logger.Info("tile built",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("triangles", len(g.Index())/3),
		zap.Bool("skirt", g.Params.Skirt),
	)

	switch command {
	case "info":
		return cmdInfo(stdout, g)
	case "groups":
		return cmdGroups(stdout, g)
	case "obj":
		return cmdOBJ(stdout, g, cfg.Output.Path)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// cmdInit saves cfg so later runs pick it up. An empty path means the
// user config directory.
func cmdInit(w io.Writer, cfg *config.Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if path == "" {
		path = filepath.Join(config.ConfigDir(), config.FileName)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	} else if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	logger.Info("wrote config", zap.String("path", path))
	fmt.Fprintf(w, "Config written to %s\n", path)
	return nil
}

func cmdInfo(w io.Writer, g *tilemesh.Geometry) error {
	p := g.Params
	box := g.Bounds()
	size := box.Size()

	fmt.Fprintf(w, "Tile:      %g x %g\n", p.Width, p.Height)
	fmt.Fprintf(w, "Segments:  %d x %d\n", p.WidthSegments, p.HeightSegments)
	fmt.Fprintf(w, "Vertices:  %d\n", g.VertexCount())
	fmt.Fprintf(w, "Triangles: %d\n", len(g.Index())/3)
	fmt.Fprintf(w, "Bounds:    (%g, %g, %g) - (%g, %g, %g)\n",
		box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
	fmt.Fprintf(w, "Size:      %g x %g x %g\n", size.X, size.Y, size.Z)

	if !p.Skirt {
		fmt.Fprintln(w, "Skirt:     none")
		return nil
	}

	fmt.Fprintf(w, "Skirt:     depth %g\n", p.SkirtDepth)
	fmt.Fprintf(w, "  %-4s %8s %8s %8s %8s\n", "edge", "vstart", "vcount", "istart", "icount")
	for _, s := range g.Strips {
		fmt.Fprintf(w, "  %-4s %8d %8d %8d %8d\n", s.Edge, s.VertexStart, s.VertexCount, s.IndexStart, s.IndexCount)
	}
	return nil
}

func cmdGroups(w io.Writer, g *tilemesh.Geometry) error {
	fmt.Fprintf(w, "%-10s %8s %8s\n", "group", "start", "count")
	for _, grp := range g.Groups {
		fmt.Fprintf(w, "%-10s %8d %8d\n", grp.Name, grp.StartIndex, grp.IndexCount)
	}
	return nil
}

func cmdOBJ(stdout io.Writer, g *tilemesh.Geometry, path string) error {
	if path == "" {
		return export.WriteOBJ(stdout, g)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteOBJ(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("wrote obj", zap.String("path", path))
	return nil
}
