package aquarium

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Rand is the random source the simulation draws from. Every stochastic
// decision goes through it, so a seeded source replays a session exactly.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a seeded PCG source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedFromString derives a seed from a human-friendly name.
func SeedFromString(name string) uint64 {
	return xxhash.Sum64String(name)
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intBetween draws from [lo, hi] inclusive.
func intBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func chance(r Rand, p float64) bool {
	return r.Float64() < p
}
