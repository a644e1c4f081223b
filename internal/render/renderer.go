//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a painted Frame to an ebiten image and draws it.
type GridPainter struct {
	img *ebiten.Image
}

// NewGridPainter allocates a painter matching the frame's pixel size.
func NewGridPainter(f *Frame) *GridPainter {
	return &GridPainter{img: ebiten.NewImage(f.W, f.H)}
}

// Present uploads the frame pixels and draws them at the origin of dst.
func (gp *GridPainter) Present(dst *ebiten.Image, f *Frame) {
	if b := gp.img.Bounds(); b.Dx() != f.W || b.Dy() != f.H {
		gp.img = ebiten.NewImage(f.W, f.H)
	}
	gp.img.WritePixels(f.Pix)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) {
	b := gp.img.Bounds()
	return b.Dx(), b.Dy()
}
