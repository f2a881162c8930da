package quad

import (
	"math"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

const triPoleIterations = 3

// triPoleResidual is r(u) = u - x + k*tanh(a*u + b), where a*u + b is the
// third stage output as a function of the loop input u.
type triPoleResidual struct {
	x, k, a, b lanes.Vec
}

func (t triPoleResidual) Eval(u lanes.Vec) (r, dr lanes.Vec) {
	for i := range u {
		th := math.Tanh(t.a[i]*u[i] + t.b[i])
		r[i] = u[i] - t.x[i] + t.k[i]*th
		dr[i] = 1 + t.k[i]*t.a[i]*(1-th*th)
	}

	return r, dr
}

// triPoleKernel runs three trapezoidal one-poles (R0..R2) under tanh
// global feedback from the third stage, solved per sample by Newton
// iteration. R3 keeps the previous third-stage output. highpass selects
// the response of each stage.
func triPoleKernel(highpass [3]bool, thirdOutput bool) Kernel {
	return func(rf *RegisterFile, in lanes.Vec) lanes.Vec {
		c := &rf.Coefficients
		r := &rf.Registers
		bigG, k := c[triG], c[triK]

		// Each stage is y = A*x + B given its state.
		res := triPoleResidual{x: in, k: k}

		var estimate lanes.Vec

		for i := range lanes.Width {
			g := bigG[i]

			a, b := 1.0, 0.0

			for n, hp := range highpass {
				sa, sb := g, (1-g)*r[n][i]
				if hp {
					sa, sb = 1-g, -(1-g)*r[n][i]
				}

				a, b = sa*a, sa*b+sb
			}

			res.a[i], res.b[i] = a, b
			estimate[i] = in[i] - k[i]*math.Tanh(r[3][i])
		}

		u := SolveImplicitFeedback(estimate, res, triPoleIterations)

		var first, third lanes.Vec

		for i := range lanes.Width {
			g := bigG[i]
			x := u[i]

			for n, hp := range highpass {
				s := r[n][i]
				v := (x - s) * g
				lp := v + s
				r[n][i] = lp + v

				if hp {
					x -= lp
				} else {
					x = lp
				}

				if n == 0 {
					first[i] = x
				}
			}

			third[i] = x
		}

		r[3] = third
		rf.advance()

		if thirdOutput {
			return third
		}

		return first
	}
}
