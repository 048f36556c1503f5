// Package clock paces board generations independently of the frame rate.
package clock

import "time"

// FixedStep releases at most one generation per step interval, carrying
// leftover time between calls.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting gps generations per second.
// The first call to ShouldStep always fires.
func NewFixedStep(gps int) *FixedStep {
	return newFixedStep(gps, time.Now)
}

func newFixedStep(gps int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetRate(gps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the generation rate. Non-positive values select 10.
func (f *FixedStep) SetRate(gps int) {
	if gps <= 0 {
		gps = 10
	}
	f.step = time.Second / time.Duration(gps)
}

// Step returns the current step interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the board should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Reset drops accumulated time so a resumed simulation does not catch up.
func (f *FixedStep) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}
