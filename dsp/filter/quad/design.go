package quad

import (
	"math"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/design"
)

// maxBiquadRatio keeps bilinear designs below Nyquist of the kernel rate.
const maxBiquadRatio = 0.49

type designInput struct {
	note, reso float64
	freq       float64
	hostRate   float64
	kernelRate float64
	tuning     Tuning
}

// w0 returns the normalized angular frequency at the kernel rate.
func (in designInput) w0() float64 {
	return 2 * math.Pi * math.Min(maxBiquadRatio, in.freq/in.kernelRate)
}

// prewarped returns the trapezoidal integrator gain at the kernel rate.
func (in designInput) prewarped() float64 {
	return design.Prewarp(in.freq, in.kernelRate)
}

func designCoefficients(in designInput, t Type, s Subtype) coeffs {
	if !t.HasSubtype(s) || in.kernelRate <= 0 {
		return coeffs{}
	}

	switch t {
	case TypeLP12, TypeLP24, TypeHP12, TypeHP24, TypeBP12, TypeBP24:
		return designBiquadFamily(in, t, s)
	case TypeNotch:
		return designNotch(in, s)
	case TypeAllpass:
		return designAllpass(in)
	case TypeLadder:
		return designLadder(in)
	case TypeVintageLadder:
		return designVintageLadder(in, s)
	case TypeDiode:
		return designDiode(in)
	case TypeK35LP, TypeK35HP:
		return designK35(in, t, s)
	case TypeCutoffWarpLP, TypeCutoffWarpHP, TypeResonanceWarpLP, TypeResonanceWarpHP:
		return designWarp(in, t, s)
	case TypeTriPole:
		return designTriPole(in)
	case TypeCombPos, TypeCombNeg:
		return designComb(in, t, s)
	case TypeSampleHold:
		return designSampleHold(in)
	default:
		return coeffs{}
	}
}
