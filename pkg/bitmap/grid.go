package bitmap

import (
	"fmt"
	"math/bits"
)

// Grid is a two-dimensional bit field addressed by (x, y). Each row is sized
// to the width and padded to whole words, and all rows share one contiguous
// backing slice indexed by y*stride.
type Grid struct {
	W, H   int
	stride int
	words  []uint64
}

// NewGrid allocates a cleared w×h grid.
func NewGrid(w, h int) *Grid {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("bitmap: invalid grid size %dx%d", w, h))
	}
	stride := WordsFor(w)
	return &Grid{W: w, H: h, stride: stride, words: make([]uint64, stride*h)}
}

// Stride returns the number of words per row.
func (g *Grid) Stride() int { return g.stride }

// Row returns the bits of row y as a BitMap sharing the grid's storage.
func (g *Grid) Row(y int) BitMap {
	g.check(0, y)
	lo := y * g.stride
	hi := lo + g.stride
	return BitMap{n: g.W, words: g.words[lo:hi:hi]}
}

// Set sets the cell at (x, y).
func (g *Grid) Set(x, y int) {
	g.check(x, y)
	g.words[y*g.stride+x/WordBits] |= 1 << uint(x%WordBits)
}

// Clear clears the cell at (x, y).
func (g *Grid) Clear(x, y int) {
	g.check(x, y)
	g.words[y*g.stride+x/WordBits] &^= 1 << uint(x%WordBits)
}

// Get reports whether the cell at (x, y) is set.
func (g *Grid) Get(x, y int) bool {
	g.check(x, y)
	return g.words[y*g.stride+x/WordBits]&(1<<uint(x%WordBits)) != 0
}

// Put sets or clears the cell at (x, y) according to v.
func (g *Grid) Put(x, y int, v bool) {
	if v {
		g.Set(x, y)
		return
	}
	g.Clear(x, y)
}

// Reset clears every cell.
func (g *Grid) Reset() {
	for i := range g.words {
		g.words[i] = 0
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must have the
// same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.W != src.W || g.H != src.H {
		panic(fmt.Sprintf("bitmap: copy %dx%d into %dx%d", src.W, src.H, g.W, g.H))
	}
	copy(g.words, src.words)
}

// Count returns the number of set cells.
func (g *Grid) Count() int {
	total := 0
	for _, w := range g.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// MemoryUsage returns the bytes held by the backing words: rows rounded up
// to whole words, times the number of rows.
func (g *Grid) MemoryUsage() int { return len(g.words) * wordBytes }

func (g *Grid) check(x, y int) {
	if debug && (x < 0 || x >= g.W || y < 0 || y >= g.H) {
		panic(fmt.Sprintf("bitmap: cell (%d,%d) out of range %dx%d", x, y, g.W, g.H))
	}
}
