package app

import (
	"time"

	"conway-life/internal/core"
	"conway-life/internal/render"

	"github.com/pkg/errors"
)

// State is the lifecycle stage of a Driver.
type State int

const (
	// Running advances and renders the simulation.
	Running State = iota
	// Exiting is terminal; the recording has been finalized.
	Exiting
)

func (s State) String() string {
	if s == Exiting {
		return "exiting"
	}
	return "running"
}

// Recorder receives the board after each executed tick.
type Recorder interface {
	Observe(tick int, cells []core.Cell) (bool, error)
	Close() error
}

// Surface is a display that frames are presented to.
type Surface interface {
	Present(f *render.Frame) error
	IsOpen() bool
	CancelRequested() bool
}

// Clock abstracts wall time for the polling loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type wallClock struct{}

func (wallClock) Now() time.Time        { return time.Now() }
func (wallClock) Sleep(d time.Duration) { time.Sleep(d) }

// WallClock returns a Clock backed by the time package.
func WallClock() Clock { return wallClock{} }

// Stats summarizes the driver for status displays.
type Stats struct {
	Generation int
	Population int
	Frames     int
}

// Driver owns the per-run loop state: the tick timer, tick counter, recorder
// and the frame buffer the board is painted into.
type Driver struct {
	sim      core.Sim
	rec      Recorder
	interval *core.Interval
	frame    *render.Frame
	palette  render.Palette

	state  State
	ticks  int
	frames int
}

// NewDriver returns a Running driver. The simulation must already be seeded.
func NewDriver(sim core.Sim, rec Recorder, cfg *Config, now time.Time) *Driver {
	size := sim.Size()
	return &Driver{
		sim:      sim,
		rec:      rec,
		interval: core.NewInterval(cfg.TickInterval, now),
		frame:    render.NewFrame(size.W, size.H, cfg.CellSize),
		palette:  render.DefaultPalette(),
	}
}

// State returns the current lifecycle stage.
func (d *Driver) State() State { return d.state }

// Ticks returns the number of executed ticks.
func (d *Driver) Ticks() int { return d.ticks }

// Frame returns the pixel buffer the board is painted into.
func (d *Driver) Frame() *render.Frame { return d.frame }

// Stats returns the current generation, population and recorded frames.
func (d *Driver) Stats() Stats {
	pop := 0
	for _, c := range d.sim.Cells() {
		if c == core.Alive {
			pop++
		}
	}
	return Stats{Generation: d.ticks, Population: pop, Frames: d.frames}
}

// Poll advances the simulation one tick if the interval has elapsed at now,
// offering the new board to the recorder. It reports whether a tick ran.
func (d *Driver) Poll(now time.Time) (bool, error) {
	if d.state != Running || !d.interval.Ready(now) {
		return false, nil
	}
	d.sim.Step()
	recorded, err := d.rec.Observe(d.ticks, d.sim.Cells())
	if err != nil {
		return true, errors.Wrapf(err, "record tick %d", d.ticks)
	}
	if recorded {
		d.frames++
	}
	d.ticks++
	return true, nil
}

// Paint repaints the whole frame from the current board.
func (d *Driver) Paint() (*render.Frame, error) {
	size := d.sim.Size()
	f := d.frame
	if err := render.PaintBlocks(f.Pix, f.W, d.sim.Cells(), size.W, size.H, f.CellSize, d.palette); err != nil {
		return nil, err
	}
	return f, nil
}

// Until returns the time left before the next tick is due.
func (d *Driver) Until(now time.Time) time.Duration { return d.interval.Until(now) }

// Exit moves the driver to Exiting and finalizes the recording. Later calls
// do nothing.
func (d *Driver) Exit() error {
	if d.state == Exiting {
		return nil
	}
	d.state = Exiting
	return errors.Wrap(d.rec.Close(), "finalize recording")
}

// Run drives d against s until the surface closes or cancellation is
// requested, then finalizes the recording. Errors from the simulation,
// recorder or surface end the loop immediately.
func Run(d *Driver, s Surface, clock Clock) error {
	for d.state == Running && s.IsOpen() && !s.CancelRequested() {
		if _, err := d.Poll(clock.Now()); err != nil {
			return err
		}
		f, err := d.Paint()
		if err != nil {
			return err
		}
		if err := s.Present(f); err != nil {
			return errors.Wrap(err, "present frame")
		}
		clock.Sleep(d.Until(clock.Now()))
	}
	return d.Exit()
}
