package difftest

import (
	"fmt"

	"lifeboard/pkg/core"
	"lifeboard/pkg/god"
)

// Scenario describes a lockstep run between two registered boards. Gods
// names the god.Catalog entries applied before every update.
type Scenario struct {
	Width   int
	Height  int
	Rounds  int
	Seed    int64
	Density float64
	Gods    []string
}

// Verification checks equivalence on a mid-sized board.
func Verification() Scenario {
	return Scenario{Width: 256, Height: 256, Rounds: 100, Seed: 10808, Density: 0.5}
}

// Speed compares update time on a large board.
func Speed() Scenario {
	return Scenario{Width: 2048, Height: 2048, Rounds: 1000, Seed: 10808, Density: 0.5}
}

// RunScenario builds both boards from the registry, loads the same random
// seed into each and runs the scenario. Unknown god names fail before any
// board is built. The Tester is returned whenever it was constructed, so
// timings are available even after a mismatch.
func RunScenario(s Scenario, baseline, candidate string) (*Tester, error) {
	left, right := god.Pair(s.Seed + 1)
	leftGods, err := god.Select(left, s.Gods)
	if err != nil {
		return nil, err
	}
	rightGods, err := god.Select(right, s.Gods)
	if err != nil {
		return nil, err
	}

	a, err := core.NewBoard(baseline, s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	b, err := core.NewBoard(candidate, s.Width, s.Height)
	if err != nil {
		return nil, err
	}

	seed := core.NewRNG(s.Seed).Seed(s.Width, s.Height, s.Density)
	if err := a.Load(seed); err != nil {
		return nil, fmt.Errorf("load %s: %w", baseline, err)
	}
	if err := b.Load(seed); err != nil {
		return nil, fmt.Errorf("load %s: %w", candidate, err)
	}

	t, err := New(a, b)
	if err != nil {
		return nil, err
	}
	return t, t.Run(s.Rounds, Lockstep(leftGods, rightGods)...)
}
