package biquad

// Coefficients is a direct-form second-order transfer function with a0
// normalized to 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Scaled returns c with the numerator multiplied by gain.
func (c Coefficients) Scaled(gain float64) Coefficients {
	c.B0 *= gain
	c.B1 *= gain
	c.B2 *= gain

	return c
}

// DCGain returns H(1), or 0 when the denominator vanishes there.
func (c Coefficients) DCGain() float64 {
	den := 1 + c.A1 + c.A2
	if den == 0 {
		return 0
	}

	return (c.B0 + c.B1 + c.B2) / den
}

// Section runs Coefficients in Direct Form II Transposed. Kernels never
// use it directly; it is the reference the other realizations are
// checked against.
type Section struct {
	Coefficients

	s1, s2 float64
}

// NewSection returns a zero-state section.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.s1
	s.s1 = s.B1*x - s.A1*y + s.s2
	s.s2 = s.B2*x - s.A2*y

	return y
}

// Reset clears the state.
func (s *Section) Reset() {
	s.s1, s.s2 = 0, 0
}
