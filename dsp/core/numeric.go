package core

import "math"

const (
	defaultEpsilon = 1e-12

	// DenormalThreshold is the magnitude below which FlushDenormals snaps
	// filter state to zero.
	DenormalThreshold = 1e-30
)

// Clamp limits value to the inclusive range [lo, hi]. Swapped bounds are
// accepted.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, using a relative
// comparison for large magnitudes.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
func FlushDenormals(x float64) float64 {
	if x > -DenormalThreshold && x < DenormalThreshold {
		return 0
	}

	return x
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// GuardDenominator keeps d away from zero while preserving its sign, so a
// division by the result stays finite.
func GuardDenominator(d, eps float64) float64 {
	if d >= 0 {
		return math.Max(d, eps)
	}

	return math.Min(d, -eps)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
