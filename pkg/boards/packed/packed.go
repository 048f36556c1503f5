// Package packed implements a board that stores one bit per cell.
package packed

import (
	"fmt"

	"lifeboard/pkg/bitmap"
	"lifeboard/pkg/core"
)

// Board keeps the current generation in a bit-packed grid and computes the
// next one into a second grid of the same shape.
type Board struct {
	w, h int
	cur  *bitmap.Grid
	nxt  *bitmap.Grid
}

// New returns an all-dead w×h board.
func New(w, h int) *Board {
	core.CheckSize(w, h)
	return &Board{w: w, h: h, cur: bitmap.NewGrid(w, h), nxt: bitmap.NewGrid(w, h)}
}

// Name returns the board identifier.
func (b *Board) Name() string { return "packed" }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cell reports whether (x, y) is alive.
func (b *Board) Cell(x, y int) bool {
	b.check(x, y)
	return b.cur.Get(x, y)
}

// SetCell sets the state of (x, y).
func (b *Board) SetCell(x, y int, alive bool) {
	b.check(x, y)
	b.cur.Put(x, y, alive)
}

// check panics on coordinates outside the board. Without it a column just
// past the edge of a word-aligned row would land in the next row.
func (b *Board) check(x, y int) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		panic(fmt.Sprintf("packed: cell (%d,%d) out of range %dx%d", x, y, b.w, b.h))
	}
}

// Load replaces the board with a row-major seed.
func (b *Board) Load(bits []bool) error {
	if err := core.CheckSeed(b.Size(), bits); err != nil {
		return err
	}
	for y := 0; y < b.h; y++ {
		row := bits[y*b.w : (y+1)*b.w]
		for x, alive := range row {
			b.cur.Put(x, y, alive)
		}
	}
	return nil
}

// Clear kills every cell.
func (b *Board) Clear() { b.cur.Reset() }

// MemoryUsage reports the packed footprint of the live generation.
func (b *Board) MemoryUsage() int { return b.cur.MemoryUsage() }

// Population returns the number of live cells.
func (b *Board) Population() int { return b.cur.Count() }

// Update advances the board by one generation.
func (b *Board) Update() {
	b.StepRows(0, b.h)
	b.Commit()
}

// StepRows computes rows [y0, y1) of the next generation into the scratch
// grid. It only reads the live generation, so disjoint row ranges may run
// concurrently. The board's visible state is unchanged until Commit.
func (b *Board) StepRows(y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < b.w; x++ {
			b.nxt.Put(x, y, b.calculateNextState(x, y))
		}
	}
}

// Commit makes the scratch grid the live generation. Every row must have
// been written by StepRows since the previous Commit.
func (b *Board) Commit() {
	b.cur, b.nxt = b.nxt, b.cur
}

func (b *Board) countLiveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= b.w {
				continue
			}
			if b.cur.Get(nx, ny) {
				n++
			}
		}
	}
	return n
}

func (b *Board) calculateNextState(x, y int) bool {
	return core.NextState(b.cur.Get(x, y), b.countLiveNeighbors(x, y))
}

func init() {
	core.Register("packed", func(w, h int) core.Board { return New(w, h) })
}
