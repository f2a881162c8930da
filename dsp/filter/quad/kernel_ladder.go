package quad

import (
	"math"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

// ladderKernel runs four one-pole stages in R0..R3 with the previous
// last-stage output in R4, and returns stage output tap.
func ladderKernel(tap int) Kernel {
	return func(rf *RegisterFile, in lanes.Vec) lanes.Vec {
		c := &rf.Coefficients
		r := &rf.Registers
		g := c[ladG]

		// Feedback is q times the sum of the current and previous last stage.
		drive := in.Mul(c[ladInGain]).Sub(c[ladFeedback].Mul(r[3].Add(r[4])))
		r[4] = r[3]

		r[0] = g.MulAdd(drive.Sub(r[0]), r[0]).Map(waveshaper.SoftClip8)
		r[1] = g.MulAdd(r[0].Sub(r[1]), r[1])
		r[2] = g.MulAdd(r[1].Sub(r[2]), r[2])
		r[3] = g.MulAdd(r[2].Sub(r[3]), r[3])

		out := r[tap]
		rf.advance()

		return out
	}
}

// rkClip is the cubic transistor saturation of the Runge-Kutta ladder.
func rkClip(v, sat, satInv float64) float64 {
	x := math.Max(-1, math.Min(1, v*satInv))

	return sat * (x - x*x*x/3)
}

// rkDerivatives evaluates the ladder ODE scaled by the step cutoff.
func rkDerivatives(s [4]float64, in, cutoff, k, sat, satInv float64) [4]float64 {
	c0 := rkClip(s[0], sat, satInv)
	c1 := rkClip(s[1], sat, satInv)
	c2 := rkClip(s[2], sat, satInv)
	c3 := rkClip(s[3], sat, satInv)

	return [4]float64{
		cutoff * (rkClip(in-k*s[3], sat, satInv) - c0),
		cutoff * (c0 - c1),
		cutoff * (c1 - c2),
		cutoff * (c2 - c3),
	}
}

func rkStep(s [4]float64, d [4]float64, h float64) [4]float64 {
	return [4]float64{s[0] + h*d[0], s[1] + h*d[1], s[2] + h*d[2], s[3] + h*d[3]}
}

// rungeKuttaKernel integrates the four ladder states R0..R3 with one
// classic RK4 step per sample.
func rungeKuttaKernel(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	c := &rf.Coefficients
	r := &rf.Registers

	var out lanes.Vec

	for i := range lanes.Width {
		cutoff, k := c[rkCutoff][i], c[rkResonance][i]
		sat, satInv := c[rkSaturation][i], c[rkSaturationInv][i]
		s := [4]float64{r[0][i], r[1][i], r[2][i], r[3][i]}

		k1 := rkDerivatives(s, in[i], cutoff, k, sat, satInv)
		k2 := rkDerivatives(rkStep(s, k1, 0.5), in[i], cutoff, k, sat, satInv)
		k3 := rkDerivatives(rkStep(s, k2, 0.5), in[i], cutoff, k, sat, satInv)
		k4 := rkDerivatives(rkStep(s, k3, 1), in[i], cutoff, k, sat, satInv)

		for n := range s {
			s[n] += (k1[n] + 2*k2[n] + 2*k3[n] + k4[n]) / 6
			r[n][i] = s[n]
		}

		out[i] = s[3] * (1 + c[rkGainComp][i]*k)
	}

	rf.advance()

	return out
}

// huovilainenKernel runs the Huovilainen ladder twice per sample. Stage
// delays live in R0..R5 and the cached stage saturations in R6..R8.
func huovilainenKernel(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	c := &rf.Coefficients
	r := &rf.Registers

	var out lanes.Vec

	for i := range lanes.Width {
		tune, resQuad := c[huoTune][i], c[huoResQuad][i]
		thermal := c[huoThermal][i]

		for range 2 {
			x := in[i] - resQuad*r[5][i]

			r[0][i] += tune * (waveshaper.Tanh(x*thermal) - r[6][i])
			r[6][i] = waveshaper.Tanh(r[0][i] * thermal)

			r[1][i] += tune * (r[6][i] - r[7][i])
			r[7][i] = waveshaper.Tanh(r[1][i] * thermal)

			r[2][i] += tune * (r[7][i] - r[8][i])
			r[8][i] = waveshaper.Tanh(r[2][i] * thermal)

			r[3][i] += tune * (r[8][i] - waveshaper.Tanh(r[3][i]*thermal))

			// Half-sample delay on the feedback tap.
			r[5][i] = 0.5 * (r[3][i] + r[4][i])
			r[4][i] = r[3][i]
		}

		out[i] = r[5][i] * c[huoGainComp][i]
	}

	rf.advance()

	return out
}
