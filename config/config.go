// Package config loads the YAML configuration of the snowflake command.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

// Snowflake holds all configuration for one snowflake run.
type Snowflake struct {
	// Anchors are the points a snowflake is drawn around. Empty means
	// the points are asked for interactively.
	Anchors []Anchor `yaml:"anchors"`

	Depth    int     `yaml:"depth"`
	Radius   float64 `yaml:"radius"`
	MinDepth int     `yaml:"min_depth"`
	MaxDepth int     `yaml:"max_depth"`

	// Parallel generates anchors concurrently.
	Parallel bool `yaml:"parallel"`

	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// Anchor is a point in model space.
type Anchor struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Point converts the anchor to a koch.Point.
func (a Anchor) Point() koch.Point {
	return koch.Pt3(a.X, a.Y, a.Z)
}

// OutputConfig selects the export backend and its parameters.
type OutputConfig struct {
	Format string  `yaml:"format"`
	Path   string  `yaml:"path"`
	Width  int     `yaml:"width"`  // raster only, pixels
	Height int     `yaml:"height"` // raster only, pixels
	Stroke float64 `yaml:"stroke"` // raster only, pixels
}

// LogConfig controls the slog handler installed by the CLI.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel parses Level. Unknown values map to info.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Default returns the configuration with sensible defaults, matching the
// interactive command: depth 0 within [0, 5] and radius 10.
func Default() Snowflake {
	return Snowflake{
		Depth:    0,
		Radius:   10,
		MinDepth: 0,
		MaxDepth: koch.DefaultMaxDepth,
		Output: OutputConfig{
			Format: "svg",
			Path:   "snowflake.svg",
			Width:  1024,
			Height: 1024,
			Stroke: 1.5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file on top of Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Snowflake, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Points returns the anchors as koch points.
func (c Snowflake) Points() []koch.Point {
	pts := make([]koch.Point, len(c.Anchors))
	for i, a := range c.Anchors {
		pts[i] = a.Point()
	}
	return pts
}

// Validate checks the depth bounds and the output backend.
func (c Snowflake) Validate() error {
	if c.MinDepth < 0 || c.MinDepth > c.MaxDepth {
		return fmt.Errorf("config: invalid depth bounds [%d, %d]", c.MinDepth, c.MaxDepth)
	}
	if c.MaxDepth > koch.MaxSupportedDepth {
		return fmt.Errorf("config: max_depth %d above %d: %w",
			c.MaxDepth, koch.MaxSupportedDepth, koch.ErrDepthOutOfRange)
	}
	if c.Depth < c.MinDepth || c.Depth > c.MaxDepth {
		return fmt.Errorf("config: depth %d: %w", c.Depth, koch.ErrDepthOutOfRange)
	}
	if !recording.IsRegistered(c.Output.Format) {
		return fmt.Errorf("config: unknown output format %q (have %s)",
			c.Output.Format, strings.Join(recording.Backends(), ", "))
	}
	if c.Output.Path == "" {
		return fmt.Errorf("config: output path is empty")
	}
	if c.Output.Format == "raster" {
		if c.Output.Width <= 0 || c.Output.Height <= 0 {
			return fmt.Errorf("config: raster size %dx%d must be positive", c.Output.Width, c.Output.Height)
		}
		if c.Output.Stroke <= 0 {
			return fmt.Errorf("config: raster stroke %g must be positive", c.Output.Stroke)
		}
	}
	return nil
}
