package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

// vaOnePole advances a trapezoidal one-pole with state z and gain G and
// returns the lowpass output.
func vaOnePole(x float64, z *float64, bigG float64) float64 {
	v := (x - *z) * bigG
	lp := v + *z
	*z = v + lp

	return lp
}

func k35Saturate(u, sat float64) float64 {
	if sat <= 0 {
		return u
	}

	return waveshaper.Tanh(sat * u)
}

// k35LowpassKernel runs the Korg35 lowpass: LPF1 in R0, LPF2 in R1 and
// the feedback HPF in R2.
func k35LowpassKernel(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	c := &rf.Coefficients
	r := &rf.Registers

	var out lanes.Vec

	for i := range lanes.Width {
		bigG, k := c[k35G][i], c[k35K][i]

		y1 := vaOnePole(in[i], &r[0][i], bigG)
		s35 := c[k35BetaB][i]*r[2][i] + c[k35BetaA][i]*r[1][i]

		u := k35Saturate(c[k35Alpha0][i]*(y1+s35), c[k35Saturation][i])
		y := k * vaOnePole(u, &r[1][i], bigG)
		vaOnePole(y, &r[2][i], bigG)

		out[i] = y / core.GuardDenominator(k, k35MinK)
	}

	rf.advance()

	return out
}

// k35HighpassKernel runs the Korg35 highpass: HPF1 in R0, HPF2 in R1 and
// the feedback LPF in R2.
func k35HighpassKernel(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	c := &rf.Coefficients
	r := &rf.Registers

	var out lanes.Vec

	for i := range lanes.Width {
		bigG, k := c[k35G][i], c[k35K][i]

		y1 := in[i] - vaOnePole(in[i], &r[0][i], bigG)
		s35 := c[k35BetaA][i]*r[1][i] + c[k35BetaB][i]*r[2][i]

		y := k35Saturate(k*c[k35Alpha0][i]*(y1+s35), c[k35Saturation][i])
		hp := y - vaOnePole(y, &r[1][i], bigG)
		vaOnePole(hp, &r[2][i], bigG)

		out[i] = y / core.GuardDenominator(k, k35MinK)
	}

	rf.advance()

	return out
}
