// Package record captures a downsampled animated GIF of a running simulation.
//
// image/gif can only encode a complete animation, so frames are held in
// memory and the file is written by Close. A run that never reaches Close
// leaves an empty, invalid file behind.
package record

import (
	"bufio"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"conway-life/internal/core"
	"conway-life/internal/render"

	"github.com/pkg/errors"
)

// ErrClosed is returned when frames are appended after Close.
var ErrClosed = errors.New("record: recorder closed")

// Options configures a Recorder.
type Options struct {
	// Width and Height are the simulation grid dimensions.
	Width  int
	Height int
	// Scale is the downsample factor applied to both axes.
	Scale int
	// Stride records every Stride-th tick.
	Stride int
	// Delay is the per-frame delay in hundredths of a second.
	Delay   int
	Palette render.Palette
}

// DefaultOptions returns the options for a w*h grid.
func DefaultOptions(w, h int) Options {
	return Options{
		Width:   w,
		Height:  h,
		Scale:   2,
		Stride:  3,
		Delay:   5,
		Palette: render.DefaultPalette(),
	}
}

// Recorder accumulates paletted frames and encodes them as a looping GIF.
type Recorder struct {
	opts    Options
	w, h    int
	palette color.Palette
	anim    gif.GIF
	out     *bufio.Writer
	closer  io.Closer
	closed  bool
}

// New prepares a Recorder writing to wc. The recorder owns wc and closes it
// in Close.
func New(wc io.WriteCloser, opts Options) (*Recorder, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Stride <= 0 {
		opts.Stride = 1
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	w, h := opts.Width/opts.Scale, opts.Height/opts.Scale
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("record: %dx%d grid is too small for scale %d", opts.Width, opts.Height, opts.Scale)
	}
	if w > 0xFFFF || h > 0xFFFF {
		return nil, errors.Errorf("record: %dx%d frames exceed the GIF size limit", w, h)
	}
	palette := color.Palette{opts.Palette.Dead, opts.Palette.Alive}
	r := &Recorder{
		opts:    opts,
		w:       w,
		h:       h,
		palette: palette,
		out:     bufio.NewWriter(wc),
		closer:  wc,
	}
	r.anim.LoopCount = 0
	r.anim.Config = image.Config{ColorModel: palette, Width: w, Height: h}
	return r, nil
}

// Create creates (or truncates) the file at path and returns a Recorder for it.
func Create(path string, opts Options) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "record: create %s", path)
	}
	r, err := New(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Options returns the effective options.
func (r *Recorder) Options() Options { return r.opts }

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int { return len(r.anim.Image) }

// Observe appends a frame when tick falls on the configured stride and
// reports whether it did.
func (r *Recorder) Observe(tick int, cells []core.Cell) (bool, error) {
	if tick%r.opts.Stride != 0 {
		return false, nil
	}
	if err := r.Append(cells); err != nil {
		return false, err
	}
	return true, nil
}

// Append downsamples cells and appends them as the next frame.
func (r *Recorder) Append(cells []core.Cell) error {
	if r.closed {
		return ErrClosed
	}
	if len(cells) != r.opts.Width*r.opts.Height {
		return errors.Errorf("record: frame has %d cells, expected %d", len(cells), r.opts.Width*r.opts.Height)
	}
	img := image.NewPaletted(image.Rect(0, 0, r.w, r.h), r.palette)
	img.Pix = Downsample(cells, r.opts.Width, r.opts.Height, r.opts.Scale)
	r.anim.Image = append(r.anim.Image, img)
	r.anim.Delay = append(r.anim.Delay, r.opts.Delay)
	r.anim.Disposal = append(r.anim.Disposal, gif.DisposalNone)
	return nil
}

// Close encodes the animation, flushes it and closes the underlying writer.
// Only the first call has any effect. An animation without frames is written
// as a single dead frame so the file stays a valid GIF.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	if len(r.anim.Image) == 0 {
		if err := r.Append(make([]core.Cell, r.opts.Width*r.opts.Height)); err != nil {
			return err
		}
	}
	r.closed = true

	if err := gif.EncodeAll(r.out, &r.anim); err != nil {
		r.closer.Close()
		return errors.Wrap(err, "record: encode gif")
	}
	if err := r.out.Flush(); err != nil {
		r.closer.Close()
		return errors.Wrap(err, "record: flush gif")
	}
	return errors.Wrap(r.closer.Close(), "record: close gif")
}

// Downsample point-samples the top-left cell of every scale*scale block and
// returns palette indices (0 dead, 1 alive) for a (w/scale)*(h/scale) bitmap.
// Cells in a trailing partial block are dropped.
func Downsample(cells []core.Cell, w, h, scale int) []uint8 {
	if scale <= 0 {
		scale = 1
	}
	ow, oh := w/scale, h/scale
	out := make([]uint8, ow*oh)
	for y := 0; y < oh; y++ {
		src := y * scale * w
		for x := 0; x < ow; x++ {
			if cells[src+x*scale] == core.Alive {
				out[y*ow+x] = 1
			}
		}
	}
	return out
}
