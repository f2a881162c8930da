package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/design"
)

// Warp biquad layout.
const (
	warpB0 = iota
	warpB1
	warpB2
	warpA1
	warpA2
	warpMakeup
)

// Tri-pole layout.
const (
	triG = iota
	triK
)

const (
	maxWarpStages = 4

	warpQScale  = 18.0
	warpQOffset = 0.1
	// warpMakeupPerStage attenuates resonant stacks of several stages.
	warpMakeupPerStage = 0.25

	triPoleMaxFeedback = 7.5
)

type warpShaper int

const (
	warpTanh warpShaper = iota
	warpSoftClip
	warpOJD
)

// warpLayout splits a warp subtype into its stage count and shaper.
// Variants are grouped by shaper, stage count ascending.
func warpLayout(s Subtype) (stages int, shaper warpShaper) {
	v := s.Variant()

	return v%maxWarpStages + 1, warpShaper(v / maxWarpStages)
}

func warpKind(t Type) design.Kind {
	if t == TypeCutoffWarpHP || t == TypeResonanceWarpHP {
		return design.KindHighpass
	}

	return design.KindLowpass
}

func designWarp(in designInput, t Type, s Subtype) coeffs {
	q := in.reso*in.reso*in.reso*warpQScale + warpQOffset
	c := design.Resonant(warpKind(t), in.w0(), 1/(2*q))

	stages, _ := warpLayout(s)

	return packWarp(c, 1/(1+warpMakeupPerStage*float64(stages-1)*in.reso))
}

func packWarp(c biquad.Coefficients, makeup float64) coeffs {
	var out coeffs
	out[warpB0] = c.B0
	out[warpB1] = c.B1
	out[warpB2] = c.B2
	out[warpA1] = c.A1
	out[warpA2] = c.A2
	out[warpMakeup] = makeup

	return out
}

func designTriPole(in designInput) coeffs {
	var c coeffs
	c[triG] = design.OnePoleGain(in.prewarped())
	c[triK] = triPoleMaxFeedback * in.reso

	return c
}
