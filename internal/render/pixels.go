package render

import (
	"image/color"

	"conway-life/internal/core"

	"github.com/pkg/errors"
)

// Palette maps the two cell states to display colors.
type Palette struct {
	Dead  color.RGBA
	Alive color.RGBA
}

// DefaultPalette returns pink for dead cells and cyan for live ones.
func DefaultPalette() Palette {
	return Palette{
		Dead:  color.RGBA{R: 0xFF, G: 0xC0, B: 0xCB, A: 0xFF},
		Alive: color.RGBA{R: 0x13, G: 0xF1, B: 0xED, A: 0xFF},
	}
}

// Color returns the display color for c.
func (p Palette) Color(c core.Cell) color.RGBA {
	if c == core.Alive {
		return p.Alive
	}
	return p.Dead
}

// Frame is a packed RGBA pixel buffer sized to a grid scaled by CellSize.
type Frame struct {
	W, H     int
	CellSize int
	Pix      []byte
}

// NewFrame allocates a frame for a grid of size w*h drawn with cellSize
// pixel blocks.
func NewFrame(w, h, cellSize int) *Frame {
	if cellSize <= 0 {
		cellSize = 1
	}
	pw, ph := w*cellSize, h*cellSize
	return &Frame{W: pw, H: ph, CellSize: cellSize, Pix: make([]byte, 4*pw*ph)}
}

// RGBAAt returns the pixel at (x, y).
func (f *Frame) RGBAAt(x, y int) color.RGBA {
	i := 4 * (y*f.W + x)
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
}

// Paint repaints every pixel of the frame from the grid.
func (f *Frame) Paint(g *core.Grid, p Palette) error {
	return PaintBlocks(f.Pix, f.W, g.Cells(), g.W, g.H, f.CellSize, p)
}

// PaintBlocks fills buf, a packed RGBA buffer bufWidth pixels wide, with one
// cellSize*cellSize block per cell. Every pixel of the grid area is written.
func PaintBlocks(buf []byte, bufWidth int, cells []core.Cell, gridW, gridH, cellSize int, p Palette) error {
	if len(cells) != gridW*gridH {
		return errors.Errorf("render: %d cells do not fill a %dx%d grid", len(cells), gridW, gridH)
	}
	if cellSize <= 0 {
		return errors.Errorf("render: invalid cell size %d", cellSize)
	}
	if bufWidth < gridW*cellSize {
		return errors.Errorf("render: buffer width %d narrower than %d", bufWidth, gridW*cellSize)
	}
	if len(buf) < 4*bufWidth*gridH*cellSize {
		return errors.Errorf("render: buffer of %d bytes too small for %dx%d pixels", len(buf), bufWidth, gridH*cellSize)
	}

	stride := 4 * bufWidth
	for y := 0; y < gridH; y++ {
		row := cells[y*gridW : (y+1)*gridW]
		top := y * cellSize * stride
		// Paint the first pixel row of the block row, then copy it down.
		for x, c := range row {
			col := p.Color(c)
			base := top + 4*x*cellSize
			for dx := 0; dx < cellSize; dx++ {
				i := base + 4*dx
				buf[i+0] = col.R
				buf[i+1] = col.G
				buf[i+2] = col.B
				buf[i+3] = col.A
			}
		}
		first := buf[top : top+4*gridW*cellSize]
		for dy := 1; dy < cellSize; dy++ {
			off := top + dy*stride
			copy(buf[off:off+len(first)], first)
		}
	}
	return nil
}
