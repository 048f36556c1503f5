// Package god provides external mutators that perturb a board between
// generations using only its public API.
package god

import (
	"errors"
	"fmt"
	"math"

	"lifeboard/pkg/core"
)

// ErrUnknownGod is returned by Select for names missing from the catalog.
var ErrUnknownGod = errors.New("unknown god function")

// Func mutates a board through Size, Cell and SetCell.
type Func func(core.Board)

// Named pairs a mutator with a label for reports and UI buttons.
type Named struct {
	Name string
	Fn   Func
}

// Border sets every edge cell alive.
func Border() Func {
	return func(b core.Board) {
		s := b.Size()
		for x := 0; x < s.W; x++ {
			b.SetCell(x, 0, true)
			b.SetCell(x, s.H-1, true)
		}
		for y := 0; y < s.H; y++ {
			b.SetCell(0, y, true)
			b.SetCell(s.W-1, y, true)
		}
	}
}

// CenterSeed brings cells to life with a probability that falls off with
// distance from the centre of the board.
func CenterSeed(rng *core.RNG) Func {
	return func(b core.Board) {
		eachByDistance(b, func(x, y int, d float64) {
			if rng.Float64() > d {
				b.SetCell(x, y, true)
			}
		})
	}
}

// EdgeCull kills cells with a probability that grows with distance from the
// centre of the board.
func EdgeCull(rng *core.RNG) Func {
	return func(b core.Board) {
		eachByDistance(b, func(x, y int, d float64) {
			if rng.Float64() < d {
				b.SetCell(x, y, false)
			}
		})
	}
}

// eachByDistance visits every cell in row-major order with its distance from
// the centre normalised to [0, 1].
func eachByDistance(b core.Board, fn func(x, y int, d float64)) {
	s := b.Size()
	cx, cy := float64(s.W)/2, float64(s.H)/2
	maxDist := math.Hypot(cx, cy)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			fn(x, y, math.Min(math.Max(d, 0), 1))
		}
	}
}

// Catalog returns the standard mutators. Each randomised mutator draws from
// its own RNG derived from seed.
func Catalog(seed int64) []Named {
	return []Named{
		{Name: "border", Fn: Border()},
		{Name: "center-seed", Fn: CenterSeed(core.NewRNG(seed))},
		{Name: "edge-cull", Fn: EdgeCull(core.NewRNG(seed + 1))},
	}
}

// Pair returns two independent catalogs built from the same seed. Applying
// the i-th mutator of each to two equal boards leaves them equal.
func Pair(seed int64) ([]Named, []Named) {
	return Catalog(seed), Catalog(seed)
}

// Select returns the catalog entries whose names appear in names, in catalog
// order. An empty names selects nothing. Any name not in the catalog is an
// error.
func Select(catalog []Named, names []string) ([]Named, error) {
	var out []Named
	for _, want := range names {
		found := false
		for _, n := range catalog {
			if n.Name == want {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownGod, want, Names(catalog))
		}
	}
	for _, n := range catalog {
		for _, want := range names {
			if n.Name == want {
				out = append(out, n)
				break
			}
		}
	}
	return out, nil
}

// Names lists the names in catalog order.
func Names(catalog []Named) []string {
	out := make([]string, len(catalog))
	for i, n := range catalog {
		out[i] = n.Name
	}
	return out
}
