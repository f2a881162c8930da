// Package testutil holds deterministic test signals and comparison helpers
// shared by the filter packages.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of a zero-phase sine.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude).
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out
}

// Impulse returns a unit impulse at pos. pos outside the buffer yields
// silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC returns a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}
