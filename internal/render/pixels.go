// Package render converts board state into pixels.
package render

import (
	"image/color"

	"lifeboard/pkg/core"
)

// FillRGBA writes one RGBA pixel per cell of b into buf in row-major order.
// buf must hold at least 4*W*H bytes.
func FillRGBA(buf []byte, b core.Board, on, off color.Color) {
	onPx := rgba8(on)
	offPx := rgba8(off)
	s := b.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			px := offPx
			if b.Cell(x, y) {
				px = onPx
			}
			copy(buf[(y*s.W+x)*4:], px[:])
		}
	}
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
