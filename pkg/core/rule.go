package core

// NextState applies Conway's rule to a cell with n live neighbours: a live
// cell survives on 2 or 3, a dead cell is born on exactly 3.
func NextState(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// Equal reports whether two boards have the same size and identical cells,
// regardless of how each stores them.
func Equal(a, b Board) bool {
	_, _, ok := FirstDiff(a, b)
	return ok
}

// FirstDiff returns the first row-major coordinate where a and b differ.
// ok is true when the boards are structurally equal. A size mismatch reports
// (-1, -1).
func FirstDiff(a, b Board) (x, y int, ok bool) {
	sa, sb := a.Size(), b.Size()
	if sa != sb {
		return -1, -1, false
	}
	for y := 0; y < sa.H; y++ {
		for x := 0; x < sa.W; x++ {
			if a.Cell(x, y) != b.Cell(x, y) {
				return x, y, false
			}
		}
	}
	return 0, 0, true
}

// Snapshot reads every cell of b in row-major order. The result is a valid
// seed for Load.
func Snapshot(b Board) []bool {
	s := b.Size()
	out := make([]bool, s.Cells())
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			out[y*s.W+x] = b.Cell(x, y)
		}
	}
	return out
}

// Population counts the live cells of b.
func Population(b Board) int {
	s := b.Size()
	n := 0
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if b.Cell(x, y) {
				n++
			}
		}
	}
	return n
}

// Randomize sets every cell of b alive with even odds.
func Randomize(b Board, rng *RNG) {
	s := b.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			b.SetCell(x, y, rng.Bool())
		}
	}
}
