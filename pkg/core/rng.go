package core

import (
	"math/rand/v2"
	"time"
)

// RNG wraps math/rand/v2 so grid seeding can be reproduced from a single seed.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed is
// replaced with the current time so unseeded runs differ from each other.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Seed reports the effective seed, which differs from the requested one only
// when a time-based seed was substituted.
func (r *RNG) Seed() int64 { return r.seed }

// Bool returns an unbiased coin flip.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 for n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillBinary sets every cell of buf with an independent coin flip.
func FillBinary(r *RNG, buf []bool) {
	for i := range buf {
		buf[i] = r.Bool()
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
