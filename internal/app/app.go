//go:build ebiten

package app

import (
	"time"

	"conway-life/internal/render"
	"conway-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Driver to the ebiten.Game interface. Ebiten owns the loop:
// Update polls the tick interval and Draw repaints and presents every frame.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	hud     *ui.HUD
	output  string
	err     error
}

// New constructs a Game for the provided driver.
func New(d *Driver, output string) *Game {
	return &Game{
		driver:  d,
		painter: render.NewGridPainter(d.Frame()),
		hud:     ui.NewHUD(180),
		output:  output,
	}
}

// Update handles input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if ebiten.IsWindowBeingClosed() ||
		ebiten.IsKeyPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	_, err := g.driver.Poll(time.Now())
	return err
}

// Draw renders the current board and, when enabled, the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	f, err := g.driver.Paint()
	if err != nil {
		g.err = err
		return
	}
	g.painter.Present(screen, f)

	st := g.driver.Stats()
	g.hud.Draw(screen, ui.Status{
		Generation: st.Generation,
		Population: st.Population,
		Frames:     st.Frames,
		Output:     g.output,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.driver.Frame()
	return f.W, f.H
}
