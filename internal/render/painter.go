//go:build ebiten

package render

import (
	"image/color"

	"lifeboard/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a board.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h board.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the board into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, b core.Board, on, off color.Color, scale int) {
	if s := b.Size(); s.W != gp.w || s.H != gp.h {
		return
	}
	FillRGBA(gp.buf, b, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
