package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

// latticeStage runs one normalized lattice section whose delayed states
// live in Registers[base] and Registers[base+1].
func latticeStage(rf *RegisterFile, base int, x lanes.Vec, clipped bool) lanes.Vec {
	c := &rf.Coefficients
	g0d, g1d := rf.Registers[base], rf.Registers[base+1]

	f1 := c[latC2].Mul(x).Sub(c[latS2].Mul(g1d))
	g2 := c[latS2].MulAdd(x, c[latC2].Mul(g1d))
	g0 := c[latC1].Mul(f1).Sub(c[latS1].Mul(g0d))
	g1 := c[latS1].MulAdd(f1, c[latC1].Mul(g0d))

	if clipped {
		g0 = g0.Map(waveshaper.SoftClip8)
		g1 = g1.Map(waveshaper.SoftClip8)
	}

	rf.Registers[base], rf.Registers[base+1] = g0, g1

	return c[latV0].MulAdd(g0, c[latV1].MulAdd(g1, c[latV2].Mul(g2)))
}

func latticeKernel12(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	out := latticeStage(rf, 0, in, false)
	rf.advance()

	return out
}

func latticeKernel24(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	out := latticeStage(rf, 2, latticeStage(rf, 0, in, false), false)
	rf.advance()

	return out
}

func clippedLatticeKernel12(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	out := latticeStage(rf, 0, in, true)
	rf.advance()

	return out
}

func clippedLatticeKernel24(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	out := latticeStage(rf, 2, latticeStage(rf, 0, in, true), true)
	rf.advance()

	return out
}

// coupledStage runs one coupled-form section with soft-clipped rotation
// state in Registers[base] and Registers[base+1].
func coupledStage(rf *RegisterFile, base int, x lanes.Vec) lanes.Vec {
	c := &rf.Coefficients
	u1d, u2d := rf.Registers[base], rf.Registers[base+1]

	y := c[cplE0].MulAdd(x, c[cplE1].MulAdd(u1d, c[cplE2].Mul(u2d)))

	u1 := c[cplRe].Mul(u1d).Sub(c[cplIm].Mul(u2d)).Add(x)
	u2 := c[cplIm].MulAdd(u1d, c[cplRe].Mul(u2d))

	rf.Registers[base] = u1.Map(waveshaper.SoftClip8)
	rf.Registers[base+1] = u2.Map(waveshaper.SoftClip8)

	return y
}

func coupledKernel12(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	out := coupledStage(rf, 0, in)
	rf.advance()

	return out
}

func coupledKernel24(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	out := coupledStage(rf, 2, coupledStage(rf, 0, in))
	rf.advance()

	return out
}

type svfOutput int

const (
	svfLow svfOutput = iota
	svfHigh
	svfBand
)

const svfMinDamp = 0.1

// svfStage runs two Chamberlin half-steps. Band and low state live in
// Registers[base] and Registers[base+1]; the band state also drives the
// feedback compressor.
func svfStage(rf *RegisterFile, base int, in lanes.Vec, mode svfOutput) lanes.Vec {
	c := &rf.Coefficients
	f1, q1 := c[svfF1], c[svfQ1]
	band, low := rf.Registers[base], rf.Registers[base+1]

	damp := lanes.Splat(1).Sub(c[svfClipDamp].Mul(band).Mul(band)).Max(lanes.Splat(svfMinDamp))

	l := f1.MulAdd(band, low)
	h := in.Sub(l).Sub(q1.Mul(band))
	b := f1.MulAdd(h, band)

	l2 := f1.MulAdd(b, l)
	h2 := in.Sub(l2).Sub(q1.Mul(b))
	b2 := f1.MulAdd(h2, b)

	rf.Registers[base] = b2.Mul(damp)
	rf.Registers[base+1] = l2.Mul(damp)

	switch mode {
	case svfHigh:
		return h2
	case svfBand:
		return b2
	default:
		return l2
	}
}

func svfKernel(mode svfOutput, fourPole bool) Kernel {
	if fourPole {
		return func(rf *RegisterFile, in lanes.Vec) lanes.Vec {
			y := svfStage(rf, 2, svfStage(rf, 0, in, mode), mode)
			out := y.Mul(rf.Coefficients[svfGain])
			rf.advance()

			return out
		}
	}

	return func(rf *RegisterFile, in lanes.Vec) lanes.Vec {
		out := svfStage(rf, 0, in, mode).Mul(rf.Coefficients[svfGain])
		rf.advance()

		return out
	}
}
