// Package random provides the uniform integer sampler shared by layout
// generation and rasterization. Callers inject a Source so that a seed
// fully determines the output.
package random

import (
	"math/rand"
	"time"
)

// Source samples uniformly distributed integers.
// The order of calls matters: two runs with the same seed only agree if
// they draw in the same order.
type Source interface {
	// Range returns a value in [lo, hi). Panics if hi <= lo.
	Range(lo, hi int) int

	// RangeInclusive returns a value in [lo, hi]. Panics if hi < lo.
	RangeInclusive(lo, hi int) int
}

// Rand is a Source backed by math/rand. It is not safe for concurrent use.
type Rand struct {
	rng  *rand.Rand
	seed int64
}

// New creates a Rand seeded with seed
func New(seed int64) *Rand {
	return &Rand{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewFromTime creates a Rand seeded from the wall clock
func NewFromTime() *Rand {
	return New(time.Now().UnixNano())
}

// Seed returns the seed this source was created with
func (r *Rand) Seed() int64 {
	return r.seed
}

// SetSeed restarts the sequence from a new seed
func (r *Rand) SetSeed(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
	r.seed = seed
}

// Range returns a value in [lo, hi)
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		panic("random: empty range")
	}
	return lo + r.rng.Intn(hi-lo)
}

// RangeInclusive returns a value in [lo, hi]
func (r *Rand) RangeInclusive(lo, hi int) int {
	if hi < lo {
		panic("random: empty range")
	}
	return lo + r.rng.Intn(hi-lo+1)
}
