// Package sample implements reproducible uniform sampling with
// replacement. Callers own the generator: seeding a fresh rand.Rand per
// call keeps results reproducible under concurrent analysis.
package sample

import "math/rand"

// Draw returns k indices drawn independently and uniformly from [0, n)
// with replacement. The same generator state yields the same sequence.
// Returns nil when n <= 0 or k <= 0.
func Draw(rng *rand.Rand, n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	out := make([]int, k)
	for i := range out {
		out[i] = rng.Intn(n)
	}
	return out
}
