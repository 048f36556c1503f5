package clock

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStep(10, clk.now)
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("Step() = %v", fs.Step())
	}
	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	clk.advance(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before a full interval elapsed")
	}
	clk.advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full interval")
	}
	clk.advance(250 * time.Millisecond)
	fired := 0
	for fs.ShouldStep() {
		fired++
	}
	if fired != 2 {
		t.Fatalf("expected 2 catch-up steps, got %d", fired)
	}
}

func TestFixedStepReset(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	fs := newFixedStep(4, clk.now)
	fs.ShouldStep()
	clk.advance(10 * time.Second)
	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("Reset should arm the next step")
	}
	if fs.ShouldStep() {
		t.Fatal("Reset should discard the backlog")
	}
}

func TestSetRateDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("default rate step = %v", fs.Step())
	}
}
