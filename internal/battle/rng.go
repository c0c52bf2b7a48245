package battle

import "math/rand/v2"

// RNG is the random source of a battle. Every randomized draw goes through
// it, so a battle is replayable from its seed.
type RNG interface {
	IntN(n int) int
	Float64() float64
}

// NewRNG returns a seeded PCG source.
func NewRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// chance reports whether a roll with probability p succeeds.
func chance(rng RNG, p float64) bool {
	if p <= 0 {
		return false
	}
	return rng.Float64() < p
}

// percent reports whether a roll with a percent chance succeeds.
func percent(rng RNG, pct int) bool {
	return chance(rng, float64(pct)/100)
}

// roll100 draws uniformly from 1..100.
func roll100(rng RNG) int {
	return rng.IntN(100) + 1
}
