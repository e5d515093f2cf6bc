package markov

import "math/rand/v2"

// RandomSource supplies the uniform draws used for sampling. *rand.Rand from
// both math/rand and math/rand/v2 satisfy it.
type RandomSource interface {
	// Float64 returns a pseudo-random number in [0,1).
	Float64() float64
}

// NewSeededSource returns a deterministic source: the same seed always yields
// the same sequence of draws.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewRandomSource returns a source seeded from the runtime's random state, so
// every call produces a different sequence.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
