package life

import (
	"slices"
	"testing"

	"conway-life/internal/core"
)

func empty(w, h int) *Life {
	l := New(w, h)
	l.Grid().Clear()
	return l
}

func snapshot(l *Life) []core.Cell {
	return append([]core.Cell(nil), l.Cells()...)
}

func TestTransitionRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		got := Next(core.Dead, n)
		want := core.Dead
		if n == 3 {
			want = core.Alive
		}
		if got != want {
			t.Fatalf("dead cell with %d neighbors became %v, expected %v", n, got, want)
		}

		got = Next(core.Alive, n)
		want = core.Dead
		if n == 2 || n == 3 {
			want = core.Alive
		}
		if got != want {
			t.Fatalf("alive cell with %d neighbors became %v, expected %v", n, got, want)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := empty(5, 5)
	g := life.Grid()
	g.Set(2, 1, core.Alive)
	g.Set(2, 2, core.Alive)
	g.Set(2, 3, core.Alive)
	initial := snapshot(life)

	life.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := life.Grid().At(x, y) == core.Alive
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	if !slices.Equal(initial, life.Cells()) {
		t.Fatal("blinker did not return to its initial phase after two steps")
	}
	if life.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", life.Generation())
	}
}

func TestBlockIsStable(t *testing.T) {
	life := empty(6, 6)
	g := life.Grid()
	g.Set(2, 2, core.Alive)
	g.Set(3, 2, core.Alive)
	g.Set(2, 3, core.Alive)
	g.Set(3, 3, core.Alive)
	initial := snapshot(life)

	life.Step()
	if !slices.Equal(initial, life.Cells()) {
		t.Fatal("block changed after one step")
	}
	life.Step()
	if !slices.Equal(initial, life.Cells()) {
		t.Fatal("block changed after two steps")
	}
}

func TestNeighborsWrapDiagonal(t *testing.T) {
	life := empty(5, 4)
	life.Grid().Set(4, 3, core.Alive)

	if n := life.Neighbors(0, 0); n != 1 {
		t.Fatalf("(0,0) sees %d neighbors, expected the wrapped (W-1,H-1) diagonal", n)
	}
	if n := life.Neighbors(1, 1); n != 0 {
		t.Fatalf("(1,1) sees %d neighbors, expected 0", n)
	}
}

func TestSynchronousUpdateOnTorus(t *testing.T) {
	// On a 3x3 torus every cell neighbors all eight others, so the next state
	// depends only on the population before the step.
	life := empty(3, 3)
	g := life.Grid()
	g.Set(0, 0, core.Alive)
	g.Set(1, 0, core.Alive)
	g.Set(2, 2, core.Alive)

	life.Step()
	for i, c := range life.Cells() {
		if c != core.Alive {
			t.Fatalf("cell %d = %v after first step, expected every cell alive", i, c)
		}
	}

	life.Step()
	for i, c := range life.Cells() {
		if c != core.Dead {
			t.Fatalf("cell %d = %v after second step, expected every cell dead", i, c)
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	a := New(32, 24)
	b := New(32, 24)
	a.Reset(99)
	b.Reset(99)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Reset with equal seeds produced different boards")
	}
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("boards diverged at generation %d", i+1)
		}
	}
}

func TestSingleCellGridCountsItself(t *testing.T) {
	life := empty(1, 1)
	life.Grid().Set(0, 0, core.Alive)

	if n := life.Neighbors(0, 0); n != 8 {
		t.Fatalf("1x1 live cell sees %d neighbors, expected 8", n)
	}
	life.Step()
	if life.Cells()[0] != core.Dead {
		t.Fatal("1x1 live cell should die of overpopulation")
	}
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestSeedUsesDensity(t *testing.T) {
	life := NewWithConfig(Config{Width: 4, Height: 4, Density: 0.5})
	life.Step()
	life.Seed(constSource(0.25))
	if got := life.Population(); got != 16 {
		t.Fatalf("population = %d, expected all 16 cells alive", got)
	}
	if life.Generation() != 0 {
		t.Fatal("Seed should reset the generation counter")
	}
	life.Seed(constSource(0.75))
	if got := life.Population(); got != 0 {
		t.Fatalf("population = %d, expected empty board", got)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "40", "h": "-1", "density": "0.3"})
	if c.Width != 40 || c.Height != 100 || c.Density != 0.3 {
		t.Fatalf("unexpected config %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
	if FromMap(map[string]string{"density": "2"}).Density != DefaultConfig().Density {
		t.Fatal("out of range density should be ignored")
	}
}
