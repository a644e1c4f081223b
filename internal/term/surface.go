// Package term presents frames as block characters redrawn in place on a
// terminal.
package term

import (
	"context"
	"io"
	"strings"

	"conway-life/internal/render"

	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
)

const (
	blockAlive = "██"
	blockDead  = "  "
)

// Surface redraws frames in place using uilive. Cancelling ctx requests the
// loop to exit.
type Surface struct {
	ctx     context.Context
	w       *uilive.Writer
	palette render.Palette
	scale   int
	closed  bool
	sb      strings.Builder
}

// NewSurface writes to out, folding scale*scale cells into one character pair.
func NewSurface(ctx context.Context, out io.Writer, p render.Palette, scale int) *Surface {
	if scale <= 0 {
		scale = 1
	}
	w := uilive.New()
	w.Out = out
	return &Surface{ctx: ctx, w: w, palette: p, scale: scale}
}

// Present samples the top-left pixel of every scale*scale cell group and
// redraws the terminal view.
func (s *Surface) Present(f *render.Frame) error {
	if s.closed {
		return errors.New("term: surface closed")
	}
	step := f.CellSize * s.scale
	s.sb.Reset()
	for y := 0; y < f.H; y += step {
		for x := 0; x < f.W; x += step {
			if f.RGBAAt(x, y) == s.palette.Alive {
				s.sb.WriteString(blockAlive)
			} else {
				s.sb.WriteString(blockDead)
			}
		}
		s.sb.WriteByte('\n')
	}
	if _, err := io.WriteString(s.w, s.sb.String()); err != nil {
		return errors.Wrap(err, "term: buffer frame")
	}
	return errors.Wrap(s.w.Flush(), "term: flush frame")
}

// IsOpen reports whether Close has not been called yet.
func (s *Surface) IsOpen() bool { return !s.closed }

// CancelRequested reports whether the context was cancelled (Ctrl-C).
func (s *Surface) CancelRequested() bool { return s.ctx.Err() != nil }

// Close releases the surface. The last frame stays on screen.
func (s *Surface) Close() error {
	s.closed = true
	return nil
}
