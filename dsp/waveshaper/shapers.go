package waveshaper

import "math"

const (
	softClipLimit  = 1.5
	softClip8Limit = 12.0
	tanhLimit      = 3.0
	digitalSteps   = 16.0
	minDigitalStep = 1e-6
)

// SoftClip is the cubic x - 4/27 x^3, saturating at ±1 for |x| >= 1.5.
func SoftClip(x float64) float64 {
	x = clamp(x, -softClipLimit, softClipLimit)
	return x - (4.0/27.0)*x*x*x
}

// SoftClip8 is SoftClip stretched by a factor of eight, reaching ±8 at
// |x| >= 12. Used on filter state where headroom above unity is expected.
func SoftClip8(x float64) float64 {
	x = clamp(x, -softClip8Limit, softClip8Limit)
	return x - (4.0/(27.0*64.0))*x*x*x
}

// Tanh is a rational tanh approximation, exact at ±3 and flat beyond.
func Tanh(x float64) float64 {
	if x > tanhLimit {
		return 1
	}

	if x < -tanhLimit {
		return -1
	}

	x2 := x * x

	return clamp(x*(27+x2)/(27+9*x2), -1, 1)
}

// HardClip limits x to [-1, 1].
func HardClip(x float64) float64 {
	return clamp(x, -1, 1)
}

// OJD is a piecewise overdrive curve: linear around zero, quadratic knees
// at -1.7..-0.3 and 0.9..1.1, flat outside.
func OJD(x float64) float64 {
	switch {
	case x <= -1.7:
		return -1
	case x < -0.3:
		x += 0.3
		return x + x*x/(4*0.7) - 0.3
	case x > 0.9 && x < 1.1:
		x -= 0.9
		return x - x*x/(4*0.1) + 0.9
	case x >= 1.1:
		return 1
	default:
		return x
	}
}

// BitReduce quantizes x (clamped to ±1) onto 16 steps per unit of drive.
func BitReduce(x, drive float64) float64 {
	step := math.Max(math.Abs(drive), minDigitalStep) / digitalSteps
	x = clamp(x, -1, 1)

	return step * math.Round(x/step)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}

	if x > hi {
		return hi
	}

	return x
}
