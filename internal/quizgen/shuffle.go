package quizgen

import "math/rand"

// shuffled returns a uniformly permuted copy of items using Fisher-Yates.
// The input slice is left untouched.
func shuffled[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
