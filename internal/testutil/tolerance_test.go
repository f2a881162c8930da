package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"equal", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"one-off", []float64{1, 2, 3}, []float64{1, 2.5, 3}, 0.5},
		{"prefix", []float64{1, 2}, []float64{1, 4, 9}, 2},
		{"empty", nil, []float64{1}, 0},
	}

	for _, tt := range tests {
		if got := MaxAbsDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-15 {
			t.Fatalf("%s: MaxAbsDiff = %v, want %v", tt.name, got, tt.want)
		}
	}
}
