package life

import (
	"conway-life/internal/core"
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg        Config
	cur        *core.Grid
	nxt        *core.Grid
	generation int
}

// New returns a Life simulation with the provided dimensions and the default
// seeding density.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from cfg.
func NewWithConfig(cfg Config) *Life {
	cur := core.NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	return &Life{cfg: cfg, cur: cur, nxt: core.NewGrid(cur.W, cur.H)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []core.Cell { return l.cur.Cells() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Population() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.Seed(core.NewRNG(seed))
}

// Seed randomizes the board from src at the configured density.
func (l *Life) Seed(src core.Source) {
	core.FillRandom(src, l.cur.Cells(), l.cfg.Density)
	l.generation = 0
}

// Next applies the Life transition to a single cell with n live neighbors.
func Next(c core.Cell, n int) core.Cell {
	switch {
	case c == core.Alive && n < 2:
		return core.Dead
	case c == core.Alive && (n == 2 || n == 3):
		return core.Alive
	case c == core.Alive && n > 3:
		return core.Dead
	case c == core.Dead && n == 3:
		return core.Alive
	}
	return c
}

// Neighbors counts live cells among the 8 toroidal neighbors of (x, y).
//
// On grids narrower than 3 cells the wrap folds neighbors onto each other:
// with W == 2 the left and right neighbor are the same cell and count twice,
// and with W == 1 the cell is its own left and right neighbor. The same holds
// for H. Every offset is still counted, so a 1x1 live cell sees 8 neighbors.
func (l *Life) Neighbors(x, y int) int {
	w, h := l.cur.W, l.cur.H
	cells := l.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w + w) % w
			ny := ((y+dy)%h + h) % h
			if cells[ny*w+nx] == core.Alive {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = Next(cur[idx], l.Neighbors(x, y))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
