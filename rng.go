package gogue

import "math/rand"

// RNG is the capability this module requires of a caller-supplied random
// number generator (spec §6, §9): a non-negative integer below n, a double
// in [0, 1), and a Fisher-Yates-equivalent bulk shuffle. No operation in
// this module reads a package-level default generator; every caller that
// needs randomness takes an RNG explicitly.
type RNG interface {
	// Intn returns a random integer in [0, n). It panics if n <= 0, as
	// math/rand.Rand.Intn does.
	Intn(n int) int
	// Float64 returns a random float64 in [0, 1).
	Float64() float64
	// Shuffle randomizes the order of n elements via swap, using the
	// Fisher-Yates algorithm.
	Shuffle(n int, swap func(i, j int))
}

// *math/rand.Rand already satisfies RNG; this is asserted so that the
// teacher's idiom of passing around a *rand.Rand (rl.MapGen.Rand) keeps
// working unchanged against this interface.
var _ RNG = (*rand.Rand)(nil)

// NewRNG returns a *rand.Rand seeded deterministically, for convenience
// when a caller doesn't already have one. It is never used as an implicit
// default inside this module's algorithms.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
