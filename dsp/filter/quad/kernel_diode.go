package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

// diodeStage is one zero-delay one-pole of the diode ladder.
type diodeStage struct {
	alpha, beta, gamma, delta, epsilon, a0 float64
}

// diodeNetwork holds the solved coupling terms of the four stages for one
// integrator gain g.
type diodeNetwork struct {
	stages [4]diodeStage
	gamma  float64
	sg     [4]float64
}

func newDiodeNetwork(g float64) diodeNetwork {
	g4 := 0.5 * g / (1 + g)
	g3 := 0.5 * g / (1 + g - 0.5*g*g4)
	g2 := 0.5 * g / (1 + g - 0.5*g*g3)
	g1 := g / (1 + g - g*g2)

	alpha := g / (1 + g)

	return diodeNetwork{
		stages: [4]diodeStage{
			{alpha: alpha, beta: 1 / (1 + g - g*g2), gamma: 1 + g1*g2, delta: g, epsilon: g2, a0: 1},
			{alpha: alpha, beta: 1 / (1 + g - 0.5*g*g3), gamma: 1 + g2*g3, delta: 0.5 * g, epsilon: g3, a0: 0.5},
			{alpha: alpha, beta: 1 / (1 + g - 0.5*g*g4), gamma: 1 + g3*g4, delta: 0.5 * g, epsilon: g4, a0: 0.5},
			{alpha: alpha, beta: 1 / (1 + g), gamma: 1, a0: 0.5},
		},
		gamma: g4 * g3 * g2 * g1,
		sg:    [4]float64{g4 * g3 * g2, g4 * g3, g4, 1},
	}
}

// diodeKernel runs the four-stage diode ladder with integrator states in
// R0..R3 and returns the output of stage tap.
func diodeKernel(tap int) Kernel {
	return func(rf *RegisterFile, in lanes.Vec) lanes.Vec {
		c := &rf.Coefficients
		r := &rf.Registers

		var out lanes.Vec

		for i := range lanes.Width {
			net := newDiodeNetwork(c[diodeG][i])
			k := c[diodeK][i]

			// Feedback outputs resolve from the last stage backwards.
			var fb [5]float64
			for n := 3; n >= 0; n-- {
				st := &net.stages[n]
				fb[n] = st.beta * (r[n][i] + fb[n+1]*st.delta)
			}

			sigma := net.sg[0]*fb[0] + net.sg[1]*fb[1] + net.sg[2]*fb[2] + net.sg[3]*fb[3]
			x := waveshaper.Tanh((in[i] - k*sigma) / (1 + k*net.gamma))

			var taps [4]float64
			for n := range net.stages {
				st := &net.stages[n]
				z := r[n][i]

				x = x*st.gamma + fb[n+1] + st.epsilon*fb[n]
				v := (st.a0*x - z) * st.alpha
				y := v + z
				r[n][i] = v + y

				taps[n] = y
				x = y
			}

			out[i] = taps[tap]
		}

		rf.advance()

		return out
	}
}
