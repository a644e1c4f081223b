package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	File string `json:"-"`

	Width    int     `json:"width"`
	Height   int     `json:"height"`
	CellSize int     `json:"cell_size"`
	Density  float64 `json:"density"`
	// Seed of 0 seeds from the wall clock.
	Seed int64 `json:"seed"`

	TickInterval time.Duration `json:"tick_interval"`
	TPS          int           `json:"tps"`

	Output      string `json:"output"`
	GIFScale    int    `json:"gif_scale"`
	FrameStride int    `json:"frame_stride"`
	FrameDelay  int    `json:"frame_delay"`

	// TermScale is the number of cells folded into one character by the
	// headless terminal view.
	TermScale int `json:"term_scale"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:        100,
		Height:       100,
		CellSize:     8,
		Density:      0.15,
		TickInterval: 100 * time.Millisecond,
		TPS:          60,
		Output:       "conway_life.gif",
		GIFScale:     2,
		FrameStride:  3,
		FrameDelay:   5,
		TermScale:    2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "JSON file with configuration overrides")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "on-screen pixels per cell")
	fs.Float64Var(&c.Density, "density", c.Density, "initial probability of a live cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 uses the clock)")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "simulation tick interval")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window update polls per second")
	fs.StringVar(&c.Output, "out", c.Output, "animated GIF output path")
	fs.IntVar(&c.GIFScale, "gif-scale", c.GIFScale, "downsample factor for GIF frames")
	fs.IntVar(&c.FrameStride, "stride", c.FrameStride, "record every Nth tick")
	fs.IntVar(&c.FrameDelay, "delay", c.FrameDelay, "GIF frame delay in hundredths of a second")
	fs.IntVar(&c.TermScale, "term-scale", c.TermScale, "cells per character in the terminal view")
}

// Load overlays the JSON file at path onto c. Keys missing from the file keep
// their current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[Config.Load] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[Config.Load] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("invalid grid size %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("invalid cell size %d", c.CellSize)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %v outside [0, 1]", c.Density)
	case c.TickInterval <= 0:
		return errors.Errorf("invalid tick interval %v", c.TickInterval)
	case c.TPS <= 0:
		return errors.Errorf("invalid tps %d", c.TPS)
	case c.Output == "":
		return errors.New("output path is empty")
	case c.GIFScale <= 0 || c.Width/c.GIFScale == 0 || c.Height/c.GIFScale == 0:
		return errors.Errorf("gif scale %d does not fit a %dx%d grid", c.GIFScale, c.Width, c.Height)
	case c.FrameStride <= 0:
		return errors.Errorf("invalid frame stride %d", c.FrameStride)
	case c.FrameDelay < 0:
		return errors.Errorf("invalid frame delay %d", c.FrameDelay)
	case c.TermScale <= 0:
		return errors.Errorf("invalid terminal scale %d", c.TermScale)
	}
	return nil
}

// ParseConfig parses args into a Config. When -config names a file it is
// loaded first and flags given on the command line still take precedence.
func ParseConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		if err := cfg.Load(cfg.File); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return cfg, nil
}
