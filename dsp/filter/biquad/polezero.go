package biquad

import "math"

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// PoleRadius returns the largest pole magnitude.
func (c Coefficients) PoleRadius() float64 {
	disc := c.A1*c.A1 - 4*c.A2
	if disc < 0 {
		return math.Sqrt(c.A2)
	}

	r := math.Sqrt(disc)

	return 0.5 * math.Max(math.Abs(-c.A1+r), math.Abs(-c.A1-r))
}
