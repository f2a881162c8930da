package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

func (s warpShaper) fn() func(float64) float64 {
	switch s {
	case warpSoftClip:
		return waveshaper.SoftClip
	case warpOJD:
		return waveshaper.OJD
	default:
		return waveshaper.Tanh
	}
}

// cutoffWarpKernel cascades stages copies of the same biquad, each with
// its feedback taps shaped by nf. Stage n keeps its state in R(2n) and
// R(2n+1).
func cutoffWarpKernel(stages int, shaper warpShaper) Kernel {
	nf := shaper.fn()

	return func(rf *RegisterFile, in lanes.Vec) lanes.Vec {
		c := &rf.Coefficients
		r := &rf.Registers
		x := in

		for n := range stages {
			z1, z2 := &r[2*n], &r[2*n+1]

			out := c[warpB0].MulAdd(x, *z1)
			shaped := out.Map(nf)

			*z1 = c[warpB1].MulAdd(x, *z2).Sub(c[warpA1].Mul(shaped))
			*z2 = c[warpB2].Mul(x).Sub(c[warpA2].Mul(shaped))

			x = out
		}

		out := x.Mul(c[warpMakeup])
		rf.advance()

		return out
	}
}

// resonanceWarpKernel is the cutoff-warp cascade with the shaper moved
// onto the state updates.
func resonanceWarpKernel(stages int, shaper warpShaper) Kernel {
	nf := shaper.fn()

	return func(rf *RegisterFile, in lanes.Vec) lanes.Vec {
		c := &rf.Coefficients
		r := &rf.Registers
		x := in

		for n := range stages {
			z1, z2 := &r[2*n], &r[2*n+1]

			out := c[warpB0].MulAdd(x, *z1)

			*z1 = c[warpB1].MulAdd(x, *z2).Sub(c[warpA1].Mul(out)).Map(nf)
			*z2 = c[warpB2].Mul(x).Sub(c[warpA2].Mul(out)).Map(nf)

			x = out
		}

		out := x.Mul(c[warpMakeup])
		rf.advance()

		return out
	}
}
