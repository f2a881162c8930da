package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

// minResidualSlope keeps Newton steps finite on flat residuals.
const minResidualSlope = 1e-9

// Residual evaluates an implicit equation r(u) = 0 and its derivative
// dr/du, lane by lane.
type Residual interface {
	Eval(u lanes.Vec) (r, dr lanes.Vec)
}

// ResidualFunc adapts a function to Residual.
type ResidualFunc func(u lanes.Vec) (r, dr lanes.Vec)

// Eval calls f(u).
func (f ResidualFunc) Eval(u lanes.Vec) (r, dr lanes.Vec) {
	return f(u)
}

// SolveImplicitFeedback refines estimate with a fixed number of
// Newton-Raphson steps on residual. A lane whose step is not finite keeps
// its previous value.
func SolveImplicitFeedback[R Residual](estimate lanes.Vec, residual R, iterations int) lanes.Vec {
	u := estimate

	for range iterations {
		r, dr := residual.Eval(u)

		for i := range u {
			next := u[i] - r[i]/core.GuardDenominator(dr[i], minResidualSlope)
			if core.IsFinite(next) {
				u[i] = next
			}
		}
	}

	return u
}
