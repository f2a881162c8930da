package design

import (
	"math"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// Kind selects the response of a Resonant design.
type Kind int

const (
	KindLowpass Kind = iota
	KindHighpass
	KindBandpass
	KindNotch
	KindAllpass
)

// String returns the short name of k.
func (k Kind) String() string {
	switch k {
	case KindLowpass:
		return "lowpass"
	case KindHighpass:
		return "highpass"
	case KindBandpass:
		return "bandpass"
	case KindNotch:
		return "notch"
	case KindAllpass:
		return "allpass"
	default:
		return "unknown"
	}
}

// Resonant designs an RBJ section at normalized angular frequency w0
// (radians per sample) with alpha = sin(w0)*damping. damping is 1/(2Q);
// negative values are allowed. The bandpass has 0 dB peak gain.
// Degenerate input yields zero coefficients.
func Resonant(kind Kind, w0, damping float64) biquad.Coefficients {
	if !isFinite(w0) || !isFinite(damping) || w0 <= 0 || w0 >= math.Pi {
		return biquad.Coefficients{}
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw * damping

	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	var b0, b1, b2 float64

	switch kind {
	case KindLowpass:
		b1 = 1 - cw
		b0 = b1 / 2
		b2 = b0
	case KindHighpass:
		b1 = -(1 + cw)
		b0 = -b1 / 2
		b2 = b0
	case KindBandpass:
		b0 = alpha
		b2 = -alpha
	case KindNotch:
		b0 = 1
		b1 = -2 * cw
		b2 = 1
	case KindAllpass:
		b0 = 1 - alpha
		b1 = -2 * cw
		b2 = 1 + alpha
	default:
		return biquad.Coefficients{}
	}

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(KindLowpass, freq, q, sampleRate)
}

// Highpass designs a highpass biquad at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(KindHighpass, freq, q, sampleRate)
}

// Bandpass designs a 0 dB peak-gain bandpass biquad.
func Bandpass(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(KindBandpass, freq, q, sampleRate)
}

// Notch designs a notch biquad centered at freq (Hz).
func Notch(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(KindNotch, freq, q, sampleRate)
}

// Allpass designs an allpass biquad centered at freq (Hz).
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(KindAllpass, freq, q, sampleRate)
}

func designHz(kind Kind, freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return Resonant(kind, w0, 1/(2*normalizedQ(q)))
}

// normalizedW0 converts freq to radians per sample, rejecting values
// outside (0, Nyquist).
func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || !isFinite(sampleRate) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || !isFinite(freq) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || !isFinite(q) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || !isFinite(a0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
