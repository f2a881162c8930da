//go:build fastmath

package quad

import (
	"github.com/meko-christian/algo-approx"
)

// ln2Over12 converts semitones to natural-log units.
const ln2Over12 = 0.057762265046662105

func pitchRatio(note float64) float64 {
	return approx.FastExp(note * ln2Over12)
}
