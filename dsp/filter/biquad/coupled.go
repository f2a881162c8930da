package biquad

import "math"

const minPoleImag = 1e-6

// Coupled is the rotated complex-pole realization of a biquad. The pole
// pair Re ± j*Im rotates a two-element state; E are the output taps applied
// to the input and the delayed state.
//
// Per sample, with delayed states u1d and u2d:
//
//	y  = E0*x + E1*u1d + E2*u2d
//	u1 = Re*u1d - Im*u2d + x
//	u2 = Im*u1d + Re*u2d
type Coupled struct {
	Re, Im     float64
	E0, E1, E2 float64
}

// Coupled converts c to coupled form. Real pole pairs are folded onto a
// minimal imaginary part, which keeps the taps finite.
func (c Coefficients) Coupled() Coupled {
	re := -0.5 * c.A1
	im := math.Max(minPoleImag, math.Sqrt(math.Max(0, c.A2-re*re)))

	e0 := c.B0
	e1 := c.B1 - c.B0*c.A1
	e2 := (c.B2 - c.B0*c.A2 + e1*re) / im

	return Coupled{Re: re, Im: im, E0: e0, E1: e1, E2: e2}
}

// Scaled returns k with every output tap multiplied by gain.
func (k Coupled) Scaled(gain float64) Coupled {
	k.E0 *= gain
	k.E1 *= gain
	k.E2 *= gain

	return k
}

// CoupledSection runs a Coupled form on a scalar stream.
type CoupledSection struct {
	Coupled

	u1, u2 float64
}

// NewCoupledSection returns a zero-state section.
func NewCoupledSection(k Coupled) *CoupledSection {
	return &CoupledSection{Coupled: k}
}

// ProcessSample filters one sample.
func (s *CoupledSection) ProcessSample(x float64) float64 {
	y := s.E0*x + s.E1*s.u1 + s.E2*s.u2

	u1 := s.Re*s.u1 - s.Im*s.u2 + x
	u2 := s.Im*s.u1 + s.Re*s.u2
	s.u1, s.u2 = u1, u2

	return y
}

// Reset clears the rotation state.
func (s *CoupledSection) Reset() {
	s.u1, s.u2 = 0, 0
}
