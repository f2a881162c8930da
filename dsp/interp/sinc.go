package interp

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-synthfilter/dsp/window"
)

const (
	// SincTaps is the number of samples read per interpolated value.
	SincTaps = 12
	// SincPhases is the number of tabulated fractional positions.
	SincPhases = 256

	sincCenter     = SincTaps/2 - 1
	defaultKaiserB = 5.0
)

// SincTable holds windowed-sinc weights for fractional positions between
// window[5] and window[6] of a 12-sample window. Rows are normalized to
// unity DC gain. A SincTable is immutable after construction.
type SincTable struct {
	weights [SincPhases + 1][SincTaps]float64
	deltas  [SincPhases][SincTaps]float64
}

var (
	sharedSinc     *SincTable
	sharedSincOnce sync.Once
)

// Sinc returns the process-wide table, building it on first use.
func Sinc() *SincTable {
	sharedSincOnce.Do(func() {
		sharedSinc = NewSincTable(defaultKaiserB)
	})

	return sharedSinc
}

// NewSincTable builds a table with Kaiser window shape beta.
func NewSincTable(beta float64) *SincTable {
	t := &SincTable{}
	half := float64(SincTaps) / 2

	for p := 0; p <= SincPhases; p++ {
		frac := float64(p) / SincPhases
		sum := 0.0

		for k := range SincTaps {
			x := float64(k-sincCenter) - frac
			w := window.Sinc(x) * window.KaiserAt(x/half, beta)
			t.weights[p][k] = w
			sum += w
		}

		if sum != 0 {
			for k := range SincTaps {
				t.weights[p][k] /= sum
			}
		}
	}

	for p := range SincPhases {
		for k := range SincTaps {
			t.deltas[p][k] = t.weights[p+1][k] - t.weights[p][k]
		}
	}

	return t
}

// Weights writes the interpolated tap weights for frac in [0, 1] into dst.
func (t *SincTable) Weights(frac float64, dst *[SincTaps]float64) {
	pos := math.Max(0, math.Min(frac, 1)) * SincPhases

	p := int(pos)
	if p >= SincPhases {
		*dst = t.weights[SincPhases]
		return
	}

	mu := pos - float64(p)
	row := &t.weights[p]
	d := &t.deltas[p]

	for k := range SincTaps {
		dst[k] = row[k] + mu*d[k]
	}
}

// Interpolate returns the band-limited value at window[5] + frac.
func (t *SincTable) Interpolate(window *[SincTaps]float64, frac float64) float64 {
	var w [SincTaps]float64
	t.Weights(frac, &w)

	acc := 0.0
	for k := range SincTaps {
		acc += w[k] * window[k]
	}

	return acc
}
