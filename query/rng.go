package query

import "math/rand"

// defaultSeed is used when callers pass seed == 0, keeping default runs reproducible.
const defaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand; seed == 0 selects defaultSeed.
// The returned generator is not safe for concurrent use.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Pair is one (source, sink) query.
type Pair struct {
	Source int `json:"source" yaml:"source"`
	Sink   int `json:"sink" yaml:"sink"`
}

// RandomPairs draws count pairs with both ends uniform in [0, n).
// Source and sink may coincide.
func RandomPairs(rng *rand.Rand, n, count int) []Pair {
	out := make([]Pair, count)
	for i := range out {
		out[i] = Pair{Source: rng.Intn(n), Sink: rng.Intn(n)}
	}

	return out
}
