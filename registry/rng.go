package registry

import "math/rand"

// defaultSeed is the fixed seed NewRNG uses when it is called with
// seed==0, mirroring tsp/rng.go's policy of never silently
// falling back to a time-based source.
const defaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for the given seed. Shared
// by Registry (tie_breaker draws on agent insertion) and by
// pibt.Engine (candidate-set shuffling in chooseNode), per spec.md §5:
// "a planner-scoped deterministic pseudo-random generator seeds both
// tie_breaker assignments and per-call candidate shuffling."
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}
