package difftest

import (
	"errors"
	"strings"
	"testing"

	"lifeboard/pkg/boards/naive"
	"lifeboard/pkg/boards/packed"
	"lifeboard/pkg/boards/parallel"
	"lifeboard/pkg/core"
	"lifeboard/pkg/god"
)

// torus is a board that wraps neighbour lookups around the edges, as an
// early packed board did. The tester must reject it against a clipped board.
type torus struct {
	*naive.Board
}

func (t torus) Name() string { return "torus" }

func (t torus) Update() {
	s := t.Size()
	next := make([]bool, s.Cells())
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if t.Cell((x+dx+s.W)%s.W, (y+dy+s.H)%s.H) {
						n++
					}
				}
			}
			next[y*s.W+x] = core.NextState(t.Cell(x, y), n)
		}
	}
	if err := t.Load(next); err != nil {
		panic(err)
	}
}

func loaded(t *testing.T, seed []bool, boards ...core.Board) {
	t.Helper()
	for _, b := range boards {
		if err := b.Load(seed); err != nil {
			t.Fatalf("load %s: %v", b.Name(), err)
		}
	}
}

func TestVerificationAgainstNaive(t *testing.T) {
	s := Verification()
	seed := core.NewRNG(s.Seed).Seed(s.Width, s.Height, s.Density)
	for _, candidate := range []core.Board{packed.New(s.Width, s.Height), parallel.New(s.Width, s.Height)} {
		baseline := naive.New(s.Width, s.Height)
		loaded(t, seed, baseline, candidate)
		tester, err := New(baseline, candidate)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := tester.Run(s.Rounds); err != nil {
			t.Fatalf("%s: %v", candidate.Name(), err)
		}
		if tester.Rounds() != s.Rounds {
			t.Fatalf("Rounds() = %d, want %d", tester.Rounds(), s.Rounds)
		}
		if !strings.Contains(tester.Report(), "naive update time") || !strings.Contains(tester.Report(), candidate.Name()) {
			t.Fatalf("unexpected report %q", tester.Report())
		}
	}
}

func TestRunWithGods(t *testing.T) {
	const w, h = 128, 96
	a, b := naive.New(w, h), parallel.NewWithWorkers(w, h, 4)
	loaded(t, core.NewRNG(3).Seed(w, h, 0.2), a, b)
	tester, err := New(a, b)
	if err != nil {
		t.Fatal(err)
	}
	left, right := god.Pair(99)
	if err := tester.Run(25, Lockstep(left, right)...); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestNewRejectsUnequalBoards(t *testing.T) {
	a, b := naive.New(8, 8), packed.New(8, 8)
	b.SetCell(2, 5, true)
	_, err := New(a, b)
	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if mm.Phase != PhaseInitial || mm.X != 2 || mm.Y != 5 {
		t.Fatalf("unexpected mismatch %+v", mm)
	}

	_, err = New(naive.New(8, 8), packed.New(8, 9))
	if !errors.As(err, &mm) || mm.X != -1 {
		t.Fatalf("size mismatch not reported: %v", err)
	}
	if !strings.Contains(err.Error(), "board size") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRunDetectsBoundaryDisagreement(t *testing.T) {
	a := naive.New(6, 6)
	b := torus{naive.New(6, 6)}
	// A blinker on the left edge evolves differently once the right edge
	// counts as its neighbour.
	for _, board := range []core.Board{a, b} {
		board.SetCell(0, 1, true)
		board.SetCell(0, 2, true)
		board.SetCell(0, 3, true)
	}
	tester, err := New(a, b)
	if err != nil {
		t.Fatal(err)
	}
	err = tester.Run(10)
	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if mm.Phase != PhasePostUpdate || mm.Round != 0 {
		t.Fatalf("unexpected mismatch %+v", mm)
	}
	if tester.Rounds() != 1 {
		t.Fatalf("Run continued after a mismatch: %d rounds", tester.Rounds())
	}
}

func TestRunDetectsMutatorDivergence(t *testing.T) {
	a, b := naive.New(10, 10), packed.New(10, 10)
	tester, err := New(a, b)
	if err != nil {
		t.Fatal(err)
	}
	noop := func(core.Board) {}
	mutators := []Mutator{
		Same(god.Named{Name: "border", Fn: god.Border()}),
		{Name: "lopsided", A: func(b core.Board) { b.SetCell(4, 4, true) }, B: noop},
	}
	err = tester.Run(5, mutators...)
	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if mm.Phase != PhasePostMutator || mm.Mutator != 1 || mm.MutatorName != "lopsided" || mm.Round != 0 {
		t.Fatalf("unexpected mismatch %+v", mm)
	}
	if !strings.Contains(mm.Error(), "lopsided") {
		t.Fatalf("error does not name the mutator: %q", mm.Error())
	}
}

func TestRunScenario(t *testing.T) {
	s := Scenario{Width: 80, Height: 70, Rounds: 30, Seed: 4, Density: 0.3, Gods: []string{"center-seed", "edge-cull"}}
	tester, err := RunScenario(s, "naive", "parallel")
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if tester.Rounds() != s.Rounds {
		t.Fatalf("Rounds() = %d, want %d", tester.Rounds(), s.Rounds)
	}
	if !strings.Contains(tester.Memory(), "naive memory: 5600 bytes") {
		t.Fatalf("unexpected memory summary %q", tester.Memory())
	}

	if _, err := RunScenario(s, "naive", "missing"); !errors.Is(err, core.ErrUnknownBoard) {
		t.Fatalf("expected ErrUnknownBoard, got %v", err)
	}
}

func TestRunScenarioRejectsUnknownGod(t *testing.T) {
	s := Scenario{Width: 8, Height: 8, Rounds: 2, Seed: 1, Density: 0.5, Gods: []string{"boarder"}}
	tester, err := RunScenario(s, "naive", "packed")
	if !errors.Is(err, god.ErrUnknownGod) {
		t.Fatalf("expected ErrUnknownGod, got %v", err)
	}
	if tester != nil {
		t.Fatalf("tester ran %d rounds despite the bad god name", tester.Rounds())
	}
}

func TestLockstepPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Lockstep accepted catalogs of different length")
		}
	}()
	Lockstep(god.Catalog(1), god.Catalog(1)[:1])
}

func TestPhaseString(t *testing.T) {
	if PhasePostUpdate.String() != "post-update" || Phase(9).String() != "Phase(9)" {
		t.Fatal("unexpected Phase strings")
	}
}

func BenchmarkSpeedScenario(b *testing.B) {
	s := Speed()
	s.Rounds = 5
	for i := 0; i < b.N; i++ {
		if _, err := RunScenario(s, "packed", "parallel"); err != nil {
			b.Fatal(err)
		}
	}
}
