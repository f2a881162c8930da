package biquad

import (
	"math"
	"math/cmplx"
)

const minMagnitudeDB = -240.0

// Realization is a scalar runtime for one second-order section.
type Realization interface {
	ProcessSample(x float64) float64
	Reset()
}

// Response returns H(e^jw) at w radians per sample.
func (c *Coefficients) Response(w float64) complex128 {
	z1 := cmplx.Rect(1, -w)
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// MagnitudeDB returns 20*log10|H(e^jw)|, floored at -240 dB.
func (c *Coefficients) MagnitudeDB(w float64) float64 {
	m := cmplx.Abs(c.Response(w))
	if m <= 0 || math.IsNaN(m) {
		return minMagnitudeDB
	}

	return math.Max(minMagnitudeDB, 20*math.Log10(m))
}

// Impulse resets r, records n samples of its impulse response and resets
// it again.
func Impulse(r Realization, n int) []float64 {
	if n <= 0 {
		return nil
	}

	r.Reset()
	defer r.Reset()

	out := make([]float64, n)
	out[0] = r.ProcessSample(1)

	for i := 1; i < n; i++ {
		out[i] = r.ProcessSample(0)
	}

	return out
}
