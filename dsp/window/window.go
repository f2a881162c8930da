package window

import (
	"fmt"
	"math"
)

// Kaiser returns a symmetric Kaiser window of size coefficients.
func Kaiser(size int, beta float64) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window: size must be > 0: %d", size)
	}

	if beta < 0 || math.IsNaN(beta) {
		return nil, fmt.Errorf("window: kaiser beta must be >= 0: %f", beta)
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	den := float64(size - 1)
	for n := range out {
		out[n] = KaiserAt(2*float64(n)/den-1, beta)
	}

	return out, nil
}

// KaiserAt evaluates the continuous Kaiser window at t in [-1, 1]. It is
// zero-clamped outside that range.
func KaiserAt(t, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	a := math.Sqrt(math.Max(0, 1-t*t))

	return besselI0(beta*a) / besselI0(beta)
}

// Sinc returns sin(pi*x)/(pi*x).
func Sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// besselI0 sums the power series of the modified Bessel function I0.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	q := x * x / 4
	for k := 1; k < 64; k++ {
		term *= q / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}
