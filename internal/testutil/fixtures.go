package testutil

import "math/rand"

// DeterministicPattern returns length values in [-1, 1) drawn from a fixed seed.
func DeterministicPattern(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// Ramp returns [start, start+1, ..., start+length-1].
func Ramp(start float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

// Chunks splits s into consecutive chunks of size n. A trailing partial
// chunk is included. It returns nil when n <= 0.
func Chunks[T any](s []T, n int) [][]T {
	if n <= 0 {
		return nil
	}
	var out [][]T
	for len(s) > 0 {
		k := min(n, len(s))
		out = append(out, s[:k])
		s = s[k:]
	}
	return out
}
