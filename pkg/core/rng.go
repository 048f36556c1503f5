package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Seed returns w*h booleans, each alive with probability density.
func (r *RNG) Seed(w, h int, density float64) []bool {
	bits := make([]bool, w*h)
	FillBools(r.r, bits, density)
	return bits
}

// FillBools sets each entry of buf to true with probability p.
func FillBools(r *rand.Rand, buf []bool, p float64) {
	for i := range buf {
		buf[i] = r.Float64() < p
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
