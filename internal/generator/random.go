package generator

import "math/rand"

// Rand is the single pseudorandom source threaded through every generation
// step. All sampling flows from it, so a seed reproduces an identical
// instance.
type Rand struct {
	*rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rand.New(rand.NewSource(seed))}
}

// WeightedIndex draws an index with probability proportional to its weight.
// Zero-weight categories are never drawn unless every weight is zero.
func (rng *Rand) WeightedIndex(weights []float64) int {
	var total float64
	for _, weight := range weights {
		total += weight
	}

	target := rng.Float64() * total
	for i, weight := range weights {
		target -= weight
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// IntBetween draws a uniform integer from the inclusive range [low, high].
func (rng *Rand) IntBetween(low, high int) int {
	return low + rng.Intn(high-low+1)
}

// Bool is true with probability p.
func (rng *Rand) Bool(p float64) bool {
	return rng.Float64() < p
}

func Choice[T any](rng *Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// WeightedChoice draws one item from a weighted categorical distribution.
// Level, type, year and preference selection all funnel through here.
func WeightedChoice[T any](rng *Rand, items []T, weights []float64) T {
	return items[rng.WeightedIndex(weights)]
}

// Sample draws n distinct items without replacement.
func Sample[T any](rng *Rand, items []T, n int) []T {
	permutation := rng.Perm(len(items))
	sampled := make([]T, n)
	for i := range n {
		sampled[i] = items[permutation[i]]
	}
	return sampled
}
