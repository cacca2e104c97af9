// Package randutil holds the shuffling helpers used to order questions
// and build answer options.
package randutil

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/elemquiz/internal/elements"
)

// New returns a PCG-backed generator seeded from the given values.
func New(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// NewTimeSeeded returns a generator seeded from the wall clock.
func NewTimeSeeded() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return New(now, now>>17|now<<47)
}

// Shuffle returns a uniformly random permutation of in using Fisher-Yates.
// The input slice is left untouched.
func Shuffle[T any](r *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SampleDistractors draws count distinct symbols from the full table,
// never including exclude. It returns fewer than count only when the pool
// is too small.
func SampleDistractors(r *rand.Rand, count int, exclude string) []string {
	all := elements.Symbols()
	pool := all[:0]
	for _, s := range all {
		if s != exclude {
			pool = append(pool, s)
		}
	}
	shuffled := Shuffle(r, pool)
	if count > len(shuffled) {
		count = len(shuffled)
	}
	if count < 0 {
		count = 0
	}
	return shuffled[:count]
}
