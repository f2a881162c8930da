package oversample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/window"
)

// designPrototype returns a Kaiser-windowed sinc lowpass of
// tapsPerPhase*factor taps with cutoff at the host Nyquist scaled by
// cfg.cutoffScale, normalized to unity DC gain.
func designPrototype(factor int, cfg config) ([]float64, error) {
	if cfg.tapsPerPhase <= 0 {
		return nil, errors.New("oversample: taps per phase must be > 0")
	}

	if cfg.cutoffScale <= 0 || cfg.cutoffScale > 1 {
		return nil, errors.New("oversample: cutoff scale must be in (0, 1]")
	}

	n := cfg.tapsPerPhase * factor

	fc := 0.5 / float64(factor) * cfg.cutoffScale
	if fc <= 0 || fc >= 0.5 {
		return nil, fmt.Errorf("oversample: invalid cutoff %.6f", fc)
	}

	taps, err := window.Kaiser(n, cfg.kaiserBeta)
	if err != nil {
		return nil, fmt.Errorf("oversample: %w", err)
	}

	center := 0.5 * float64(n-1)

	var sum float64

	for i := range taps {
		t := float64(i) - center
		taps[i] *= 2 * fc * window.Sinc(2*fc*t)
		sum += taps[i]
	}

	if sum == 0 {
		return nil, errors.New("oversample: designed zero-sum filter")
	}

	for i := range taps {
		taps[i] /= sum
	}

	return taps, nil
}

// splitPhases returns the interpolation branches of taps, each reversed
// so that a dot product with oldest-first history applies the filter.
// Branch gains are scaled by factor to keep unity passband gain after
// zero stuffing.
func splitPhases(taps []float64, factor int) [][]float64 {
	m := len(taps) / factor
	phases := make([][]float64, factor)

	for p := range phases {
		branch := make([]float64, m)
		for k := range m {
			branch[m-1-k] = taps[p+k*factor] * float64(factor)
		}

		phases[p] = branch
	}

	return phases
}

func reversed(taps []float64) []float64 {
	out := make([]float64, len(taps))
	for i, v := range taps {
		out[len(taps)-1-i] = v
	}

	return out
}
