//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the information shown above the buttons.
type Status struct {
	Generation int
	Population int
	Board      string
	Memory     int
}

// Sidebar draws the status text and buttons.
type Sidebar struct {
	pixel *ebiten.Image
}

// NewSidebar constructs a Sidebar.
func NewSidebar() *Sidebar {
	s := &Sidebar{pixel: ebiten.NewImage(1, 1)}
	s.pixel.Fill(color.White)
	return s
}

// Draw renders the sidebar at originX.
func (s *Sidebar) Draw(dst *ebiten.Image, originX int, st Status, buttons []Button) {
	h := dst.Bounds().Dy()
	s.fill(dst, image.Rect(originX, 0, originX+SidebarWidth, h), color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	x := originX + panelPadding
	text.Draw(dst, fmt.Sprintf("Cycle: %d", st.Generation), face, x, 20, fg)
	text.Draw(dst, fmt.Sprintf("%s, %d alive, %dB", st.Board, st.Population, st.Memory), face, x, 40, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	for _, b := range buttons {
		s.drawButton(dst, b.Rect, b.Label)
	}
}

func (s *Sidebar) drawButton(dst *ebiten.Image, rect image.Rectangle, label string) {
	s.fill(dst, rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (s *Sidebar) fill(dst *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(s.pixel, op)
}
