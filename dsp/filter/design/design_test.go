package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mag(c biquad.Coefficients, freq, sampleRate float64) float64 {
	return cmplx.Abs(c.Response(2 * math.Pi * freq / sampleRate))
}

func TestBiquadDesigners_BasicResponseShape(t *testing.T) {
	sr := 48000.0
	f := 1000.0
	q := 1 / math.Sqrt2

	lp := Lowpass(f, q, sr)
	if !(mag(lp, 100, sr) > mag(lp, 10000, sr)) {
		t.Fatal("lowpass shape check failed")
	}

	if !almostEqual(mag(lp, 1, sr), 1, 1e-6) {
		t.Fatalf("lowpass DC gain = %v", mag(lp, 1, sr))
	}

	hp := Highpass(f, q, sr)
	if !(mag(hp, 10000, sr) > mag(hp, 100, sr)) {
		t.Fatal("highpass shape check failed")
	}

	bp := Bandpass(f, q, sr)
	if !almostEqual(mag(bp, f, sr), 1, 1e-9) {
		t.Fatalf("bandpass peak = %v, want 1", mag(bp, f, sr))
	}

	n := Notch(f, q, sr)
	if !(mag(n, f, sr) < 1e-6 && mag(n, 100, sr) > 0.9) {
		t.Fatal("notch shape check failed")
	}

	ap := Allpass(f, q, sr)
	for _, hz := range []float64{100, 500, 1000, 5000, 10000} {
		if !almostEqual(mag(ap, hz, sr), 1, 1e-6) {
			t.Fatalf("allpass magnitude at %v Hz = %v, want ~1", hz, mag(ap, hz, sr))
		}
	}
}

func TestResonantNegativeDampingMovesPolesOutside(t *testing.T) {
	c := Resonant(KindLowpass, 0.1, -0.01)
	if c.A2 <= 1 {
		t.Fatalf("A2 = %v, want > 1 for negative damping", c.A2)
	}

	stable := Resonant(KindLowpass, 0.1, 0.5)
	if stable.A2 >= 1 {
		t.Fatalf("A2 = %v, want < 1", stable.A2)
	}
}

func TestResonantRejectsDegenerateInput(t *testing.T) {
	zero := biquad.Coefficients{}

	tests := []struct {
		name    string
		kind    Kind
		w0      float64
		damping float64
	}{
		{name: "zero-w0", kind: KindLowpass, w0: 0, damping: 0.5},
		{name: "nyquist", kind: KindLowpass, w0: math.Pi, damping: 0.5},
		{name: "nan-damping", kind: KindHighpass, w0: 1, damping: math.NaN()},
		{name: "unknown-kind", kind: Kind(42), w0: 1, damping: 0.5},
		{name: "alpha-minus-one", kind: KindLowpass, w0: math.Pi / 2, damping: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resonant(tt.kind, tt.w0, tt.damping); got != zero {
				t.Fatalf("got %#v, want zero", got)
			}
		})
	}
}

func TestHzDesignersRejectInvalidFrequency(t *testing.T) {
	zero := biquad.Coefficients{}
	if Lowpass(0, 1, 48000) != zero || Lowpass(30000, 1, 48000) != zero || Highpass(100, 1, 0) != zero {
		t.Fatal("expected zero coefficients")
	}

	if Lowpass(1000, -1, 48000) != Lowpass(1000, defaultQ, 48000) {
		t.Fatal("invalid Q should fall back to the default")
	}
}

func TestPrewarp(t *testing.T) {
	if got := Prewarp(12000, 48000); !almostEqual(got, 1, 1e-12) {
		t.Fatalf("Prewarp(fs/4) = %v, want 1", got)
	}

	if got := Prewarp(1e9, 48000); !isFinite(got) {
		t.Fatalf("Prewarp above Nyquist = %v", got)
	}

	if Prewarp(-1, 48000) != 0 {
		t.Fatal("negative frequency should give zero gain")
	}

	if got := OnePoleGain(1); got != 0.5 {
		t.Fatalf("OnePoleGain(1) = %v", got)
	}
}

func TestImpulseInvariantGainCapped(t *testing.T) {
	want := 1 - math.Exp(-2*math.Pi*0.187)
	if got := ImpulseInvariantGain(40000, 96000, 0.187); !almostEqual(got, want, 1e-12) {
		t.Fatalf("got %v want %v", got, want)
	}
}
