// Package coretest holds behaviour checks that every core.Board
// implementation must pass.
package coretest

import (
	"errors"
	"slices"
	"testing"

	"lifeboard/pkg/core"
)

// Run exercises factory against the shared board behaviour.
func Run(t *testing.T, factory core.Factory) {
	t.Helper()
	t.Run("Blinker", func(t *testing.T) { Blinker(t, factory) })
	t.Run("ClippedEdge", func(t *testing.T) { ClippedEdge(t, factory) })
	t.Run("Corners", func(t *testing.T) { Corners(t, factory) })
	t.Run("RuleMatchesReference", func(t *testing.T) { RuleMatchesReference(t, factory) })
	t.Run("Clear", func(t *testing.T) { Clear(t, factory) })
	t.Run("LoadRoundTrip", func(t *testing.T) { LoadRoundTrip(t, factory) })
	t.Run("LoadRejectsBadLength", func(t *testing.T) { LoadRejectsBadLength(t, factory) })
	t.Run("SetCell", func(t *testing.T) { SetCell(t, factory) })
	t.Run("OutOfRange", func(t *testing.T) { OutOfRange(t, factory) })
}

// Live returns the set of live coordinates of b.
func Live(b core.Board) map[[2]int]bool {
	s := b.Size()
	out := map[[2]int]bool{}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if b.Cell(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

// Expect fails unless exactly the given cells are alive.
func Expect(t *testing.T, b core.Board, label string, cells ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, c := range cells {
		want[c] = true
	}
	s := b.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if got := b.Cell(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("%s: %s cell (%d,%d) alive=%v, expected %v", b.Name(), label, x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

// Next computes the following generation of a row-major w×h field with a
// dead border, without going through any board implementation.
func Next(cells []bool, w, h int) []bool {
	out := make([]bool, len(cells))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx == 0 && dy == 0) || nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if cells[ny*w+nx] {
						n++
					}
				}
			}
			alive := cells[y*w+x]
			out[y*w+x] = (alive && (n == 2 || n == 3)) || (!alive && n == 3)
		}
	}
	return out
}

// Blinker checks the period-2 oscillator on a 3×3 board.
func Blinker(t *testing.T, factory core.Factory) {
	b := factory(3, 3)
	b.SetCell(0, 1, true)
	b.SetCell(1, 1, true)
	b.SetCell(2, 1, true)

	b.Update()
	Expect(t, b, "after first update", [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

	b.Update()
	Expect(t, b, "after second update", [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})
}

// ClippedEdge checks that a blinker lying on the left edge does not wrap to
// the right edge.
func ClippedEdge(t *testing.T, factory core.Factory) {
	b := factory(5, 5)
	b.SetCell(0, 1, true)
	b.SetCell(0, 2, true)
	b.SetCell(0, 3, true)

	b.Update()
	Expect(t, b, "edge blinker", [2]int{0, 2}, [2]int{1, 2})
}

// Corners checks that corner cells only see in-bounds neighbours.
func Corners(t *testing.T, factory core.Factory) {
	b := factory(6, 6)
	// A block in each corner is a still life under a dead border. With
	// wraparound the four blocks would touch across the edges and die.
	for _, c := range [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}} {
		b.SetCell(c[0], c[1], true)
		b.SetCell(c[0]+1, c[1], true)
		b.SetCell(c[0], c[1]+1, true)
		b.SetCell(c[0]+1, c[1]+1, true)
	}
	before := core.Snapshot(b)
	b.Update()
	if !slices.Equal(before, core.Snapshot(b)) {
		t.Fatalf("%s: corner blocks changed after update", b.Name())
	}

	b.Clear()
	// Three live cells around the top-left corner: (0,0) is born and the
	// lone cell in the opposite corner contributes nothing.
	b.SetCell(1, 0, true)
	b.SetCell(0, 1, true)
	b.SetCell(1, 1, true)
	b.SetCell(5, 5, true)
	b.Update()
	Expect(t, b, "corner birth", [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
}

// RuleMatchesReference compares several generations of a random board with
// the reference computation in Next.
func RuleMatchesReference(t *testing.T, factory core.Factory) {
	const w, h = 67, 29
	seed := core.NewRNG(2024).Seed(w, h, 0.4)
	b := factory(w, h)
	if err := b.Load(seed); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := seed
	for gen := 1; gen <= 20; gen++ {
		want = Next(want, w, h)
		b.Update()
		got := core.Snapshot(b)
		if !slices.Equal(got, want) {
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("%s: generation %d differs at (%d,%d): got %v, want %v", b.Name(), gen, i%w, i/w, got[i], want[i])
				}
			}
		}
	}
}

// Clear checks that clearing kills every cell and the empty board is a fixed
// point.
func Clear(t *testing.T, factory core.Factory) {
	const w, h = 70, 33
	b := factory(w, h)
	core.Randomize(b, core.NewRNG(5))
	b.Clear()
	Expect(t, b, "after clear")
	b.Update()
	Expect(t, b, "empty board after update")
}

// LoadRoundTrip checks that Load followed by a row-major read reproduces the
// seed exactly.
func LoadRoundTrip(t *testing.T, factory core.Factory) {
	for _, sz := range []core.Size{{W: 1, H: 1}, {W: 64, H: 3}, {W: 65, H: 65}, {W: 130, H: 7}} {
		seed := core.NewRNG(int64(sz.W*1000+sz.H)).Seed(sz.W, sz.H, 0.5)
		b := factory(sz.W, sz.H)
		if err := b.Load(seed); err != nil {
			t.Fatalf("Load %dx%d: %v", sz.W, sz.H, err)
		}
		if !slices.Equal(core.Snapshot(b), seed) {
			t.Fatalf("%s: %dx%d snapshot does not match seed", b.Name(), sz.W, sz.H)
		}
	}
}

// LoadRejectsBadLength checks the seed length precondition.
func LoadRejectsBadLength(t *testing.T, factory core.Factory) {
	b := factory(4, 4)
	b.SetCell(2, 2, true)
	for _, n := range []int{0, 15, 17} {
		if err := b.Load(make([]bool, n)); !errors.Is(err, core.ErrSeedLength) {
			t.Fatalf("%s: Load of %d bits: expected ErrSeedLength, got %v", b.Name(), n, err)
		}
	}
	if !b.Cell(2, 2) {
		t.Fatalf("%s: rejected Load modified the board", b.Name())
	}
}

// SetCell checks single-cell writes and reads.
func SetCell(t *testing.T, factory core.Factory) {
	b := factory(9, 5)
	if b.Size() != (core.Size{W: 9, H: 5}) {
		t.Fatalf("%s: Size() = %+v", b.Name(), b.Size())
	}
	if b.Name() == "" {
		t.Fatal("board name must not be empty")
	}
	b.SetCell(8, 4, true)
	b.SetCell(0, 0, true)
	Expect(t, b, "after SetCell", [2]int{0, 0}, [2]int{8, 4})
	b.SetCell(8, 4, false)
	Expect(t, b, "after unset", [2]int{0, 0})
	if core.Population(b) != 1 {
		t.Fatalf("%s: Population = %d, want 1", b.Name(), core.Population(b))
	}
}

// OutOfRange checks that reads and writes outside the board panic and leave
// in-range cells alone. A 64-wide board puts column W exactly on the first
// word of the next row in a packed layout.
func OutOfRange(t *testing.T, factory core.Factory) {
	const w, h = 64, 2
	coords := [][2]int{{w, 0}, {-1, 0}, {0, h}, {0, -1}, {-1, 1}}
	for _, c := range coords {
		b := factory(w, h)
		mustPanic(t, b.Name()+" SetCell", c, func() { b.SetCell(c[0], c[1], true) })
		mustPanic(t, b.Name()+" Cell", c, func() { b.Cell(c[0], c[1]) })
		if p := core.Population(b); p != 0 {
			t.Fatalf("%s: SetCell(%d,%d) changed %d in-range cells", b.Name(), c[0], c[1], p)
		}
	}
}

func mustPanic(t *testing.T, label string, c [2]int, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s(%d,%d) did not panic", label, c[0], c[1])
		}
	}()
	fn()
}
