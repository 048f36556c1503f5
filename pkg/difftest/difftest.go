// Package difftest runs two boards in lockstep and checks that they stay
// structurally equal, timing each board's updates along the way.
package difftest

import (
	"fmt"
	"time"

	"lifeboard/pkg/core"
	"lifeboard/pkg/god"
)

// Phase identifies where in a round a mismatch was detected.
type Phase int

const (
	// PhaseInitial means the boards differed before the first round.
	PhaseInitial Phase = iota
	// PhasePostMutator means a mutator left the boards different.
	PhasePostMutator
	// PhasePostUpdate means the boards differed after Update.
	PhasePostUpdate
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhasePostMutator:
		return "post-mutator"
	case PhasePostUpdate:
		return "post-update"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// MismatchError reports the first point at which two boards diverged. X, Y
// is the first differing cell, or -1, -1 when the sizes differ. Mutator is -1
// outside PhasePostMutator.
type MismatchError struct {
	A, B        string
	Phase       Phase
	Round       int
	Mutator     int
	MutatorName string
	X, Y        int
}

func (e *MismatchError) Error() string {
	where := fmt.Sprintf("cell (%d,%d)", e.X, e.Y)
	if e.X < 0 {
		where = "board size"
	}
	switch e.Phase {
	case PhaseInitial:
		return fmt.Sprintf("%s and %s differ before the first round at %s", e.A, e.B, where)
	case PhasePostMutator:
		return fmt.Sprintf("%s and %s differ at round %d after mutator %d (%s) at %s", e.A, e.B, e.Round, e.Mutator, e.MutatorName, where)
	default:
		return fmt.Sprintf("%s and %s differ at round %d after update at %s", e.A, e.B, e.Round, where)
	}
}

// Mutator applies the same change to both boards. A and B are separate so
// randomised mutators can each own an identically seeded RNG.
type Mutator struct {
	Name string
	A, B god.Func
}

// Same wraps a deterministic mutator so both boards share it.
func Same(n god.Named) Mutator {
	return Mutator{Name: n.Name, A: n.Fn, B: n.Fn}
}

// Lockstep zips two catalogs produced by god.Pair.
func Lockstep(left, right []god.Named) []Mutator {
	if len(left) != len(right) {
		panic(fmt.Sprintf("difftest: lockstep catalogs differ in length (%d vs %d)", len(left), len(right)))
	}
	out := make([]Mutator, len(left))
	for i := range left {
		out[i] = Mutator{Name: left[i].Name, A: left[i].Fn, B: right[i].Fn}
	}
	return out
}

// Tester drives a baseline board and a candidate board through identical
// operations.
type Tester struct {
	a, b     core.Board
	elapsedA time.Duration
	elapsedB time.Duration
	rounds   int
}

// New returns a Tester for two boards that must already be equal.
func New(a, b core.Board) (*Tester, error) {
	t := &Tester{a: a, b: b}
	if err := t.check(PhaseInitial, 0, -1, ""); err != nil {
		return nil, err
	}
	return t, nil
}

// Run plays rounds generations. Each round applies every mutator to both
// boards, checking equality after each, then updates both boards and checks
// again. It stops at the first mismatch.
func (t *Tester) Run(rounds int, mutators ...Mutator) error {
	for round := 0; round < rounds; round++ {
		for i, m := range mutators {
			m.A(t.a)
			m.B(t.b)
			if err := t.check(PhasePostMutator, round, i, m.Name); err != nil {
				return err
			}
		}

		start := time.Now()
		t.a.Update()
		t.elapsedA += time.Since(start)

		start = time.Now()
		t.b.Update()
		t.elapsedB += time.Since(start)

		t.rounds++
		if err := t.check(PhasePostUpdate, round, -1, ""); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tester) check(phase Phase, round, mutator int, name string) error {
	x, y, ok := core.FirstDiff(t.a, t.b)
	if ok {
		return nil
	}
	return &MismatchError{
		A:           t.a.Name(),
		B:           t.b.Name(),
		Phase:       phase,
		Round:       round,
		Mutator:     mutator,
		MutatorName: name,
		X:           x,
		Y:           y,
	}
}

// Elapsed returns the accumulated update time of each board.
func (t *Tester) Elapsed() (a, b time.Duration) { return t.elapsedA, t.elapsedB }

// Rounds returns the number of completed updates.
func (t *Tester) Rounds() int { return t.rounds }

// Report summarises the accumulated update time of both boards.
func (t *Tester) Report() string {
	return fmt.Sprintf("%s update time: %dms, %s update time: %dms over %d rounds",
		t.a.Name(), t.elapsedA.Milliseconds(), t.b.Name(), t.elapsedB.Milliseconds(), t.rounds)
}

// Memory summarises the cell storage footprint of both boards.
func (t *Tester) Memory() string {
	return fmt.Sprintf("%s memory: %d bytes, %s memory: %d bytes",
		t.a.Name(), t.a.MemoryUsage(), t.b.Name(), t.b.MemoryUsage())
}
