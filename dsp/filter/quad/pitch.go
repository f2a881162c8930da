//go:build !fastmath

package quad

import "math"

func pitchRatio(note float64) float64 {
	return math.Exp2(note / 12)
}
