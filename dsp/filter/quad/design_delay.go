package quad

import (
	"math"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/interp"
)

// Comb layout.
const (
	combDelay = iota
	combFeedback
	combDry
	combWet
)

// Sample-and-hold layout.
const (
	shRate = iota
	shFeedback
)

const (
	// CombMaxDelay is the longest comb delay in samples.
	CombMaxDelay = 2048
	// CombMaxDelayExtended is the longest delay with SubtypeExtended.
	CombMaxDelayExtended = 8192

	combTaps = interp.SincTaps
)

// combDelaySamples returns the delay in kernel samples whose period
// matches the cutoff note.
func combDelaySamples(in designInput) float64 {
	return in.tuning.NoteToPitch(-in.note) / ReferenceFrequency * in.kernelRate
}

func designComb(in designInput, t Type, s Subtype) coeffs {
	d := combDelaySamples(in)
	feedback := in.reso

	if t == TypeCombNeg {
		// Half the period with inverted feedback keeps the fundamental.
		d *= 0.5
		feedback = -feedback
	}

	maxDelay := float64(CombMaxDelay)
	if s.Extended() {
		maxDelay = CombMaxDelayExtended
	}

	var c coeffs
	c[combDelay] = core.Clamp(d, combTaps, maxDelay-combTaps)
	c[combFeedback] = feedback

	if s.Variant() == int(SubtypeCombFullWet) {
		c[combDry], c[combWet] = 0, 1
	} else {
		c[combDry], c[combWet] = 0.5, 0.5
	}

	return c
}

func designSampleHold(in designInput) coeffs {
	d := core.Clamp(combDelaySamples(in), combTaps, CombMaxDelay-combTaps)

	var c coeffs
	c[shRate] = 1 / math.Max(d, 1)
	c[shFeedback] = in.reso

	return c
}
