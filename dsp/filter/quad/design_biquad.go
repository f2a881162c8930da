package quad

import (
	"math"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/design"
)

type resonanceCurve int

const (
	curveSmooth resonanceCurve = iota
	curveMedium
	curveRough
)

const (
	svfMaxRatio        = 0.11
	svfOvershoot2Pole  = 0.1
	svfOvershoot4Pole  = 0.05
	svfClipDampScale   = 0.1
	svfGainReduction   = 0.65
	svfPassScale       = 0.5
	resonanceRolloffAt = 58.0
)

// Lattice layout.
const (
	latS2 = iota
	latC2
	latS1
	latC1
	latV0
	latV1
	latV2
)

// Coupled layout.
const (
	cplRe = iota
	cplIm
	cplE0
	cplE1
	cplE2
)

// SVF layout.
const (
	svfF1 = iota
	svfQ1
	svfClipDamp
	svfGain
)

func (t Type) fourPole() bool {
	switch t {
	case TypeLP24, TypeHP24, TypeBP24:
		return true
	default:
		return false
	}
}

func (t Type) biquadKind() design.Kind {
	switch t {
	case TypeHP12, TypeHP24:
		return design.KindHighpass
	case TypeBP12, TypeBP24:
		return design.KindBandpass
	default:
		return design.KindLowpass
	}
}

// resonanceDamping maps resonance in [0, 1] to the RBJ damping 1/(2Q) of
// the given curve. Medium and rough curves lose resonance above note 58.
func resonanceDamping(curve resonanceCurve, fourPole bool, reso, note float64) float64 {
	if curve != curveSmooth {
		reso *= math.Max(0, 1-math.Max(0, (note-resonanceRolloffAt)*0.05))
	}

	lo := 0.0
	if curve == curveRough {
		lo = 0.001
	}

	x := core.Clamp(1-(1-reso)*(1-reso), lo, 1)

	switch {
	case curve == curveRough:
		return 1 - 1.05*x
	case curve == curveMedium && fourPole:
		return 0.99 - 1.0*x
	case curve == curveMedium:
		return 0.99 - 0.99*x
	case fourPole:
		return 2.5 - 2.3*x
	default:
		return 2.5 - 2.45*x
	}
}

// gainCompensation offsets the level rise that resonance causes.
func gainCompensation(curve resonanceCurve, fourPole bool, reso float64) float64 {
	if fourPole {
		switch curve {
		case curveMedium:
			return 1 - 0.75*reso
		case curveRough:
			return 1 - 0.5*reso*reso
		default:
			return 1 - 0.5*reso
		}
	}

	switch curve {
	case curveMedium:
		return 1 - 0.75*reso*reso
	case curveRough:
		return 1 - 0.5*reso*reso
	default:
		return 1 - 0.25*reso*reso
	}
}

func designBiquadFamily(in designInput, t Type, s Subtype) coeffs {
	fourPole := t.fourPole()

	var curve resonanceCurve

	switch s.Variant() {
	case int(SubtypeSVF):
		return designSVF(in, fourPole)
	case int(SubtypeDriven):
		curve = curveRough
	case int(SubtypeSmooth):
		curve = curveMedium
	default:
		curve = curveSmooth
	}

	damping := resonanceDamping(curve, fourPole, in.reso, in.note)
	c := design.Resonant(t.biquadKind(), in.w0(), damping)

	gain := gainCompensation(curve, fourPole, in.reso)
	if fourPole {
		// Both cascaded sections share the taps.
		gain = math.Sqrt(math.Max(0, gain))
	}

	if s.Variant() == int(SubtypeDriven) {
		return packCoupled(c.Coupled().Scaled(gain))
	}

	return packLattice(c.Lattice().Scaled(gain))
}

func designNotch(in designInput, s Subtype) coeffs {
	damping := 2.5 - 2.49*in.reso
	if s.Variant() == int(SubtypeNotchMild) {
		damping = 1.0 - 0.99*in.reso
	}

	return packLattice(design.Resonant(design.KindNotch, in.w0(), damping).Lattice())
}

func designAllpass(in designInput) coeffs {
	damping := 2.5 - 2.49*in.reso

	return packLattice(design.Resonant(design.KindAllpass, in.w0(), damping).Lattice())
}

func designSVF(in designInput, fourPole bool) coeffs {
	overshoot := svfOvershoot2Pole
	if fourPole {
		overshoot = svfOvershoot4Pole
	}

	// Two integrator passes per kernel sample halve the step.
	f1 := 2 * math.Sin(math.Pi*math.Min(svfMaxRatio, in.freq*svfPassScale/in.kernelRate))
	reso := math.Sqrt(in.reso)

	q1 := 2 - reso*(2+overshoot) + f1*f1*overshoot*0.9
	q1 = math.Min(q1, math.Min(2, 2-1.52*f1))

	var c coeffs
	c[svfF1] = f1
	c[svfQ1] = q1
	c[svfClipDamp] = svfClipDampScale * reso * f1
	c[svfGain] = 1 - svfGainReduction*reso

	return c
}

func packLattice(l biquad.Lattice) coeffs {
	var c coeffs
	c[latS2] = l.S2
	c[latC2] = l.C2
	c[latS1] = l.S1
	c[latC1] = l.C1
	c[latV0] = l.V0
	c[latV1] = l.V1
	c[latV2] = l.V2

	return c
}

func packCoupled(k biquad.Coupled) coeffs {
	var c coeffs
	c[cplRe] = k.Re
	c[cplIm] = k.Im
	c[cplE0] = k.E0
	c[cplE1] = k.E1
	c[cplE2] = k.E2

	return c
}
