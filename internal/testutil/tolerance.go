package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t on a length mismatch or on the first
// element pair further apart than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps || math.IsNaN(d) {
			t.Fatalf("index %d: got %v, want %v (diff %v > %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t on the first NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute difference over the common
// prefix of a and b.
func MaxAbsDiff(a, b []float64) float64 {
	n := min(len(a), len(b))

	worst := 0.0
	for i := range n {
		worst = max(worst, math.Abs(a[i]-b[i]))
	}

	return worst
}
