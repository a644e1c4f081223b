package app

import (
	"time"

	"conway-life/internal/record"
	"conway-life/internal/sims/life"

	"github.com/pkg/errors"
)

// Start seeds a fresh board and creates the output animation described by
// cfg, returning a Running driver. A zero seed is replaced by now.
func Start(cfg *Config, now time.Time) (*Driver, error) {
	lc := life.DefaultConfig()
	lc.Width, lc.Height, lc.Density = cfg.Width, cfg.Height, cfg.Density
	sim := life.NewWithConfig(lc)

	seed := cfg.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	sim.Reset(seed)

	opts := record.DefaultOptions(cfg.Width, cfg.Height)
	opts.Scale = cfg.GIFScale
	opts.Stride = cfg.FrameStride
	opts.Delay = cfg.FrameDelay
	rec, err := record.Create(cfg.Output, opts)
	if err != nil {
		return nil, errors.Wrap(err, "start")
	}
	return NewDriver(sim, rec, cfg, now), nil
}
