package packed

import (
	"testing"

	"lifeboard/pkg/boards/naive"
	"lifeboard/pkg/core"
	"lifeboard/pkg/core/coretest"
)

func TestBoardBehaviour(t *testing.T) {
	coretest.Run(t, func(w, h int) core.Board { return New(w, h) })
}

func TestMemoryUsageBelowNaive(t *testing.T) {
	for _, sz := range []core.Size{{W: 64, H: 64}, {W: 65, H: 64}, {W: 100, H: 300}, {W: 2048, H: 2048}} {
		p := New(sz.W, sz.H).MemoryUsage()
		n := naive.New(sz.W, sz.H).MemoryUsage()
		if p >= n {
			t.Fatalf("%dx%d: packed uses %d bytes, naive %d", sz.W, sz.H, p, n)
		}
	}
}

func TestMemoryUsageRoundsRowsToWords(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{64, 64, 64 * 8},
		{65, 64, 64 * 16},
		{256, 256, 256 * 256 / 8},
		{1, 10, 10 * 8},
	}
	for _, c := range cases {
		if got := New(c.w, c.h).MemoryUsage(); got != c.want {
			t.Fatalf("%dx%d: MemoryUsage() = %d, want %d", c.w, c.h, got, c.want)
		}
	}
}

func TestMatchesNaive(t *testing.T) {
	const w, h = 97, 61
	seed := core.NewRNG(11).Seed(w, h, 0.35)
	p, n := New(w, h), naive.New(w, h)
	if err := p.Load(seed); err != nil {
		t.Fatal(err)
	}
	if err := n.Load(seed); err != nil {
		t.Fatal(err)
	}
	for gen := 0; gen < 50; gen++ {
		if x, y, ok := core.FirstDiff(n, p); !ok {
			t.Fatalf("generation %d differs at (%d,%d)", gen, x, y)
		}
		p.Update()
		n.Update()
	}
	if p.Population() != core.Population(n) {
		t.Fatalf("Population() = %d, want %d", p.Population(), core.Population(n))
	}
}

func BenchmarkUpdate256(b *testing.B) {
	board := New(256, 256)
	if err := board.Load(core.NewRNG(1).Seed(256, 256, 0.5)); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Update()
	}
}
