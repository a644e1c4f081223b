//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
)

// Status is the information shown by the HUD.
type Status struct {
	Generation int
	Population int
	Frames     int
	Output     string
}

// HUD renders a small status panel in the top-left corner of the board.
type HUD struct {
	visible bool
	width   int
	panel   *ebiten.Image
}

// NewHUD constructs a hidden HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 200
	}
	return &HUD{width: width}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Lines formats the status as display lines.
func (s Status) Lines() []string {
	return []string{
		fmt.Sprintf("generation %d", s.Generation),
		fmt.Sprintf("population %d", s.Population),
		fmt.Sprintf("gif frames %d", s.Frames),
		s.Output,
	}
}

// Draw paints the panel over screen when visible.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if !h.Visible() {
		return
	}
	lines := s.Lines()
	height := 2*hudPadding + len(lines)*hudLineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, y, color.White)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
