package quad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

func TestSolveImplicitFeedbackSquareRoot(t *testing.T) {
	targets := lanes.Vec{2, 9, 0.25, 100}
	residual := ResidualFunc(func(u lanes.Vec) (r, dr lanes.Vec) {
		for i := range u {
			r[i] = u[i]*u[i] - targets[i]
			dr[i] = 2 * u[i]
		}

		return r, dr
	})

	got := SolveImplicitFeedback(lanes.Splat(1), residual, 12)
	for i, want := range []float64{math.Sqrt2, 3, 0.5, 10} {
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("lane %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestSolveImplicitFeedbackFlatResidual(t *testing.T) {
	residual := ResidualFunc(func(u lanes.Vec) (r, dr lanes.Vec) {
		return lanes.Splat(1), lanes.Vec{}
	})

	got := SolveImplicitFeedback(lanes.Splat(0.5), residual, 3)
	if !got.IsFinite() {
		t.Fatalf("flat residual produced %v", got)
	}
}

func TestSolveImplicitFeedbackZeroIterations(t *testing.T) {
	estimate := lanes.Vec{1, 2, 3, 4}
	residual := ResidualFunc(func(u lanes.Vec) (r, dr lanes.Vec) {
		t.Fatal("residual evaluated with zero iterations")
		return r, dr
	})

	if got := SolveImplicitFeedback(estimate, residual, 0); got != estimate {
		t.Fatalf("got %v, want estimate %v", got, estimate)
	}
}

func TestTriPoleResidualConverges(t *testing.T) {
	res := triPoleResidual{
		x: lanes.Vec{0.5, -1, 2, 0},
		k: lanes.Splat(7.5),
		a: lanes.Splat(0.2),
		b: lanes.Vec{0.1, 0, -0.3, 0},
	}

	u := SolveImplicitFeedback(res.x, res, 8)
	r, _ := res.Eval(u)

	for i := range r {
		if math.Abs(r[i]) > 1e-9 {
			t.Fatalf("lane %d residual %v after solve", i, r[i])
		}
	}
}
