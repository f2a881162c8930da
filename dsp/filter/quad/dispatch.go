package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/filter/design"
	"github.com/cwbudde/algo-synthfilter/dsp/interp"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

// Kernel processes one sample per lane. It advances the coefficient ramp
// once and updates the register file in place.
type Kernel func(rf *RegisterFile, in lanes.Vec) lanes.Vec

var (
	svfKernels = [3][2]Kernel{
		svfLow:  {svfKernel(svfLow, false), svfKernel(svfLow, true)},
		svfHigh: {svfKernel(svfHigh, false), svfKernel(svfHigh, true)},
		svfBand: {svfKernel(svfBand, false), svfKernel(svfBand, true)},
	}

	ladderKernels = [4]Kernel{ladderKernel(0), ladderKernel(1), ladderKernel(2), ladderKernel(3)}
	diodeKernels  = [4]Kernel{diodeKernel(0), diodeKernel(1), diodeKernel(2), diodeKernel(3)}

	cutoffWarpKernels    = buildWarpKernels(3, cutoffWarpKernel)
	resonanceWarpKernels = buildWarpKernels(2, resonanceWarpKernel)

	triPoleModes = [4][3]bool{
		{false, false, false},
		{false, true, false},
		{true, false, true},
		{true, true, true},
	}
	triPoleKernels = buildTriPoleKernels()
)

func buildWarpKernels(shapers int, build func(int, warpShaper) Kernel) []Kernel {
	out := make([]Kernel, 0, shapers*maxWarpStages)
	for shaper := range shapers {
		for stages := 1; stages <= maxWarpStages; stages++ {
			out = append(out, build(stages, warpShaper(shaper)))
		}
	}

	return out
}

func buildTriPoleKernels() []Kernel {
	out := make([]Kernel, 0, 2*len(triPoleModes))
	for _, mode := range triPoleModes {
		out = append(out, triPoleKernel(mode, false), triPoleKernel(mode, true))
	}

	return out
}

// Dispatch returns the kernel for filter (t, s), or nil when t is
// TypeNone or the pair is unknown. Resolve it once per block.
func Dispatch(t Type, s Subtype) Kernel {
	if t == TypeNone || !t.HasSubtype(s) {
		return nil
	}

	v := s.Variant()

	switch t {
	case TypeLP12, TypeLP24, TypeHP12, TypeHP24, TypeBP12, TypeBP24:
		return biquadFamilyKernel(t, s)
	case TypeNotch, TypeAllpass:
		return latticeKernel12
	case TypeLadder:
		return ladderKernels[v]
	case TypeVintageLadder:
		if s == SubtypeHuovilainen || s == SubtypeHuovilainenCompensated {
			return huovilainenKernel
		}

		return rungeKuttaKernel
	case TypeDiode:
		return diodeKernels[v]
	case TypeK35LP:
		return k35LowpassKernel
	case TypeK35HP:
		return k35HighpassKernel
	case TypeCutoffWarpLP, TypeCutoffWarpHP:
		return cutoffWarpKernels[v]
	case TypeResonanceWarpLP, TypeResonanceWarpHP:
		return resonanceWarpKernels[v]
	case TypeTriPole:
		return triPoleKernels[v]
	case TypeCombPos, TypeCombNeg:
		return combKernel
	case TypeSampleHold:
		return sampleHoldKernel
	default:
		return nil
	}
}

func biquadFamilyKernel(t Type, s Subtype) Kernel {
	four := t.fourPole()

	switch s {
	case SubtypeSVF:
		mode := svfLow

		switch t.biquadKind() {
		case design.KindHighpass:
			mode = svfHigh
		case design.KindBandpass:
			mode = svfBand
		}

		if four {
			return svfKernels[mode][1]
		}

		return svfKernels[mode][0]
	case SubtypeDriven:
		if four {
			return coupledKernel24
		}

		return coupledKernel12
	case SubtypeSmooth:
		if four {
			return clippedLatticeKernel24
		}

		return clippedLatticeKernel12
	default:
		if four {
			return latticeKernel24
		}

		return latticeKernel12
	}
}

// InitTables builds the shared sinc and waveshaper tables and selects the
// lane backend. Call it before the first block to keep the lazy setup off
// the audio thread.
func InitTables() {
	interp.Sinc()
	waveshaper.InitTables()
	lanes.Init()
}
