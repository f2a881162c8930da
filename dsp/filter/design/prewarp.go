package design

import "math"

// maxPrewarpRatio keeps tan() away from its pole at Nyquist.
const maxPrewarpRatio = 0.49

// Prewarp returns the bilinear-transform integrator gain tan(pi*freq/fs),
// with freq limited below Nyquist.
func Prewarp(freq, sampleRate float64) float64 {
	if sampleRate <= 0 || !isFinite(freq) || freq <= 0 {
		return 0
	}

	ratio := math.Min(freq/sampleRate, maxPrewarpRatio)

	return math.Tan(math.Pi * ratio)
}

// OnePoleGain returns the instantaneous gain G = g/(1+g) of a trapezoidal
// one-pole with integrator gain g.
func OnePoleGain(g float64) float64 {
	return g / (1 + g)
}

// ImpulseInvariantGain returns 1 - exp(-2*pi*freq/fs), the one-pole
// coefficient used by non-zero-delay ladder stages. ratioCap bounds
// freq/fs before the exponential.
func ImpulseInvariantGain(freq, sampleRate, ratioCap float64) float64 {
	if sampleRate <= 0 || freq <= 0 {
		return 0
	}

	return 1 - math.Exp(-2*math.Pi*math.Min(ratioCap, freq/sampleRate))
}
