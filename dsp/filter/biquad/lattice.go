package biquad

import "math"

const (
	maxReflection = 0.9999
	minRotation   = 1e-6
)

// Lattice is the normalized two-stage lattice realization of a biquad.
// S and C are the sine and cosine of each stage rotation (S = reflection
// coefficient, C = sqrt(1-S^2)); V are the output taps.
//
// Per sample, with delayed states g0d and g1d:
//
//	f1 = C2*x - S2*g1d     g2 = S2*x + C2*g1d
//	g0 = C1*f1 - S1*g0d    g1 = S1*f1 + C1*g0d
//	y  = V0*g0 + V1*g1 + V2*g2
type Lattice struct {
	S2, C2, S1, C1 float64
	V0, V1, V2     float64
}

// Lattice converts c to lattice form. Reflection coefficients are limited
// to ±0.9999 so every stage stays a proper rotation.
func (c Coefficients) Lattice() Lattice {
	s2 := clampReflection(c.A2)
	s1 := clampReflection(c.A1 / math.Max(minRotation, 1+s2))

	c2 := math.Max(minRotation, math.Sqrt(1-s2*s2))
	c1 := math.Max(minRotation, math.Sqrt(1-s1*s1))

	v2 := c.B2
	v1 := (c.B1 - c.B2*c.A1) / c2
	v0 := (c.B0 - v1*c2*s1 - v2*s2) / (c1 * c2)

	return Lattice{S2: s2, C2: c2, S1: s1, C1: c1, V0: v0, V1: v1, V2: v2}
}

// Scaled returns l with every output tap multiplied by gain.
func (l Lattice) Scaled(gain float64) Lattice {
	l.V0 *= gain
	l.V1 *= gain
	l.V2 *= gain

	return l
}

func clampReflection(k float64) float64 {
	if math.IsNaN(k) {
		return 0
	}

	return math.Max(-maxReflection, math.Min(maxReflection, k))
}

// LatticeSection runs a Lattice on a scalar stream.
type LatticeSection struct {
	Lattice

	g0, g1 float64
}

// NewLatticeSection returns a zero-state section.
func NewLatticeSection(l Lattice) *LatticeSection {
	return &LatticeSection{Lattice: l}
}

// ProcessSample filters one sample.
func (s *LatticeSection) ProcessSample(x float64) float64 {
	f1 := s.C2*x - s.S2*s.g1
	g2 := s.S2*x + s.C2*s.g1
	g0 := s.C1*f1 - s.S1*s.g0
	g1 := s.S1*f1 + s.C1*s.g0

	s.g0, s.g1 = g0, g1

	return s.V0*g0 + s.V1*g1 + s.V2*g2
}

// Reset clears the stage states.
func (s *LatticeSection) Reset() {
	s.g0, s.g1 = 0, 0
}
