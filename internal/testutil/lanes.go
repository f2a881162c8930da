package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

// LaneNoise returns one noise channel per lane, seeded lane+1.
func LaneNoise(amplitude float64, length int) [lanes.Width][]float64 {
	var out [lanes.Width][]float64
	for lane := range out {
		out[lane] = DeterministicNoise(int64(lane+1), amplitude, length)
	}

	return out
}

// Peak returns the largest absolute value in data.
func Peak(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		peak = max(peak, math.Abs(v))
	}

	return peak
}

// ArgPeak returns the index and value of the largest sample in data.
func ArgPeak(data []float64) (int, float64) {
	at, peak := 0, math.Inf(-1)
	for i, v := range data {
		if v > peak {
			at, peak = i, v
		}
	}

	return at, peak
}

// RequireSilent fails t unless every sample is exactly zero.
func RequireSilent(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if v != 0 {
			t.Fatalf("index %d: got %v, want silence", i, v)
		}
	}
}
