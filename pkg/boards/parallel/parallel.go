// Package parallel implements a bit-packed board whose Update splits the
// rows into bands and computes them on a bounded group of goroutines.
package parallel

import (
	"runtime"

	"lifeboard/pkg/boards/packed"
	"lifeboard/pkg/core"

	"golang.org/x/sync/errgroup"
)

// Board wraps a packed.Board and replaces its Update. Rows of a
// bitmap.Grid start on word boundaries, so bands of whole rows never write
// the same word.
type Board struct {
	*packed.Board
	workers int
}

// New returns an all-dead w×h board using GOMAXPROCS workers.
func New(w, h int) *Board {
	return NewWithWorkers(w, h, 0)
}

// NewWithWorkers returns an all-dead w×h board using at most workers
// goroutines per update. workers <= 0 selects GOMAXPROCS.
func NewWithWorkers(w, h, workers int) *Board {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Board{Board: packed.New(w, h), workers: workers}
}

// Name returns the board identifier.
func (b *Board) Name() string { return "parallel" }

// Workers reports the size of the worker pool.
func (b *Board) Workers() int { return b.workers }

// Update advances the board by one generation. It returns once every band
// has been written and the generations have been swapped.
func (b *Board) Update() {
	var g errgroup.Group
	g.SetLimit(b.workers)
	for _, band := range bands(b.Size().H, b.workers) {
		g.Go(func() error {
			b.StepRows(band[0], band[1])
			return nil
		})
	}
	// Workers never fail; Wait is only the join point.
	_ = g.Wait()
	b.Commit()
}

// bands splits h rows into at most n contiguous, non-empty [start, end)
// ranges of near-equal size.
func bands(h, n int) [][2]int {
	if n > h {
		n = h
	}
	if n < 1 {
		n = 1
	}
	out := make([][2]int, 0, n)
	base, extra := h/n, h%n
	start := 0
	for i := 0; i < n; i++ {
		end := start + base
		if i < extra {
			end++
		}
		out = append(out, [2]int{start, end})
		start = end
	}
	return out
}

func init() {
	core.Register("parallel", func(w, h int) core.Board { return New(w, h) })
}
