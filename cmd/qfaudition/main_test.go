package main

import (
	"math"
	"testing"
)

func TestSawIsBoundedAndPeriodic(t *testing.T) {
	const inc = 440.0 / 48000

	var phase float64

	sum := 0.0
	period := int(math.Round(1 / inc * 100))

	for range period {
		y := saw(&phase, inc)
		if math.Abs(y) > 1.01 {
			t.Fatalf("saw out of range: %v", y)
		}

		sum += y
	}

	if mean := sum / float64(period); math.Abs(mean) > 0.01 {
		t.Fatalf("saw mean %v, want ~0", mean)
	}
}
