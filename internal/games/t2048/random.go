package t2048

import (
	"math/rand"
	"time"
)

// RandomSource yields uniform numbers in [0, 1).
// *rand.Rand satisfies it; tests substitute scripted sequences.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a deterministic source for the given seed.
// A zero seed falls back to the current time.
func NewSeededSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randInt returns an integer in [0, n) drawn from src.
func randInt(src RandomSource, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	// Guard against sources that return exactly 1.0.
	return min(max(i, 0), n-1)
}

// shuffle permutes values in place with an unbiased Fisher-Yates pass.
func shuffle(src RandomSource, values []int) {
	for m := len(values); m > 0; m-- {
		i := randInt(src, m)
		values[m-1], values[i] = values[i], values[m-1]
	}
}
