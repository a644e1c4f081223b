package core

// Grid stores a fixed-size 2D field of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the cell at (x, y) after wrapping.
func (g *Grid) At(x, y int) Cell {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores c at (x, y) after wrapping.
func (g *Grid) Set(x, y int, c Cell) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = c
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
