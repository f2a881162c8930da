package lanes

import "math"

// Width is the number of lanes processed per kernel call.
const Width = 4

// Vec is one value per lane.
type Vec [Width]float64

// Splat returns a Vec with v in every lane.
func Splat(v float64) Vec {
	return Vec{v, v, v, v}
}

// Add returns a+b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns a-b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns a*b.
func (a Vec) Mul(b Vec) Vec {
	return Vec{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Scale returns a*s.
func (a Vec) Scale(s float64) Vec {
	return Vec{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// MulAdd returns a*b + c.
func (a Vec) MulAdd(b, c Vec) Vec {
	return Vec{a[0]*b[0] + c[0], a[1]*b[1] + c[1], a[2]*b[2] + c[2], a[3]*b[3] + c[3]}
}

// Neg returns -a.
func (a Vec) Neg() Vec {
	return Vec{-a[0], -a[1], -a[2], -a[3]}
}

// Abs returns |a| per lane.
func (a Vec) Abs() Vec {
	return Vec{math.Abs(a[0]), math.Abs(a[1]), math.Abs(a[2]), math.Abs(a[3])}
}

// Max returns the lane-wise maximum.
func (a Vec) Max(b Vec) Vec {
	return Vec{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2]), math.Max(a[3], b[3])}
}

// Min returns the lane-wise minimum.
func (a Vec) Min(b Vec) Vec {
	return Vec{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2]), math.Min(a[3], b[3])}
}

// Clamp limits every lane to [lo, hi].
func (a Vec) Clamp(lo, hi float64) Vec {
	return a.Max(Splat(lo)).Min(Splat(hi))
}

// Map applies fn to every lane.
func (a Vec) Map(fn func(float64) float64) Vec {
	return Vec{fn(a[0]), fn(a[1]), fn(a[2]), fn(a[3])}
}

// Sum returns the horizontal sum of all lanes.
func (a Vec) Sum() float64 {
	return a[0] + a[1] + a[2] + a[3]
}

// IsFinite reports whether every lane is neither NaN nor infinite.
func (a Vec) IsFinite() bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
