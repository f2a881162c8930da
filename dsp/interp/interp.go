package interp

// Linear2 interpolates between x0 and x1 at t in [0, 1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + x0
}

// HermiteAt samples ys at fractional index pos with Hermite4, clamping the
// neighborhood at both ends.
func HermiteAt(ys []float64, pos float64) float64 {
	n := len(ys)
	switch {
	case n == 0:
		return 0
	case n == 1 || pos <= 0:
		return ys[0]
	case pos >= float64(n-1):
		return ys[n-1]
	}

	i := int(pos)
	t := pos - float64(i)

	at := func(k int) float64 {
		if k < 0 {
			return ys[0]
		}

		if k >= n {
			return ys[n-1]
		}

		return ys[k]
	}

	return Hermite4(t, at(i-1), ys[i], at(i+1), at(i+2))
}
