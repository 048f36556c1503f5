// Package naive implements the reference board: one bool per cell with a
// clipped (dead) border. Other board strategies are checked against it.
package naive

import "lifeboard/pkg/core"

// Board stores cells as a row-major []bool.
type Board struct {
	w, h int
	cur  []bool
	nxt  []bool
}

// New returns an all-dead w×h board.
func New(w, h int) *Board {
	core.CheckSize(w, h)
	cells := make([]bool, w*h)
	return &Board{w: w, h: h, cur: cells, nxt: make([]bool, len(cells))}
}

// Name returns the board identifier.
func (b *Board) Name() string { return "naive" }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cell reports whether (x, y) is alive.
func (b *Board) Cell(x, y int) bool { return b.cur[b.index(x, y)] }

// SetCell sets the state of (x, y).
func (b *Board) SetCell(x, y int, alive bool) { b.cur[b.index(x, y)] = alive }

// Load copies a row-major seed into the board.
func (b *Board) Load(bits []bool) error {
	if err := core.CheckSeed(b.Size(), bits); err != nil {
		return err
	}
	copy(b.cur, bits)
	return nil
}

// Clear kills every cell.
func (b *Board) Clear() { clear(b.cur) }

// MemoryUsage reports one byte per cell.
func (b *Board) MemoryUsage() int { return len(b.cur) }

// Update advances the board by one generation.
func (b *Board) Update() {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			b.nxt[y*b.w+x] = b.calculateNextState(x, y)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func (b *Board) index(x, y int) int {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		panic("naive: cell out of range")
	}
	return y*b.w + x
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
			if b.cur[ny*b.w+nx] {
				n++
			}
		}
	}
	return n
}

func (b *Board) calculateNextState(x, y int) bool {
	return core.NextState(b.cur[y*b.w+x], b.countLiveNeighbors(x, y))
}

func init() {
	core.Register("naive", func(w, h int) core.Board { return New(w, h) })
}
