package biquad

import (
	"math"
	"testing"
)

func TestResponseEndpoints(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

	if got := real(c.Response(0)); !almostEqual(got, c.DCGain(), 1e-12) {
		t.Fatalf("H(1) = %v, want %v", got, c.DCGain())
	}

	// (1 + z^-1)^2 has a double zero at Nyquist.
	if db := c.MagnitudeDB(math.Pi); db > -200 {
		t.Fatalf("Nyquist magnitude %v dB, want a null", db)
	}

	if db := (&Coefficients{}).MagnitudeDB(1); db != minMagnitudeDB {
		t.Fatalf("zero numerator gives %v dB", db)
	}
}

func TestImpulseResetsRealization(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})
	s.ProcessSample(0.7)

	ir := Impulse(s, 4)
	want := []float64{0.25, 0.55, 0.35, 0.048}

	for i := range want {
		if !almostEqual(ir[i], want[i], 1e-12) {
			t.Fatalf("ir[%d] = %v, want %v", i, ir[i], want[i])
		}
	}

	if s.s1 != 0 || s.s2 != 0 {
		t.Fatalf("state left at %v, %v", s.s1, s.s2)
	}

	if Impulse(s, 0) != nil {
		t.Fatal("expected nil for n=0")
	}
}
