package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// WeightedIndex picks an index from weights using roll, which must return a value in [0,total).
// Zero weights are never picked. Returns -1 when no weight is positive.
func WeightedIndex(weights []int, roll func(total int) int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	r := roll(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
