package lanes

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec{1, 2, 3, 4}
	b := Vec{0.5, -1, 2, 0}

	tests := []struct {
		name string
		got  Vec
		want Vec
	}{
		{name: "add", got: a.Add(b), want: Vec{1.5, 1, 5, 4}},
		{name: "sub", got: a.Sub(b), want: Vec{0.5, 3, 1, 4}},
		{name: "mul", got: a.Mul(b), want: Vec{0.5, -2, 6, 0}},
		{name: "muladd", got: a.MulAdd(b, Splat(1)), want: Vec{1.5, -1, 7, 1}},
		{name: "scale", got: a.Scale(2), want: Vec{2, 4, 6, 8}},
		{name: "neg", got: b.Neg(), want: Vec{-0.5, 1, -2, 0}},
		{name: "abs", got: b.Abs(), want: Vec{0.5, 1, 2, 0}},
		{name: "max", got: a.Max(Splat(2.5)), want: Vec{2.5, 2.5, 3, 4}},
		{name: "min", got: a.Min(Splat(2.5)), want: Vec{1, 2, 2.5, 2.5}},
		{name: "clamp", got: a.Clamp(1.5, 3.5), want: Vec{1.5, 2, 3, 3.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVecIsFinite(t *testing.T) {
	if !(Vec{1, 2, 3, 4}).IsFinite() {
		t.Fatal("finite vector reported non-finite")
	}

	if (Vec{1, math.NaN(), 3, 4}).IsFinite() {
		t.Fatal("NaN lane not detected")
	}

	if (Vec{1, 2, math.Inf(-1), 4}).IsFinite() {
		t.Fatal("Inf lane not detected")
	}
}

func TestVecSumAndMap(t *testing.T) {
	v := Vec{1, -2, 3, -4}
	if got := v.Sum(); got != -2 {
		t.Fatalf("Sum() = %v, want -2", got)
	}

	sq := v.Map(func(x float64) float64 { return x * x })
	if sq != (Vec{1, 4, 9, 16}) {
		t.Fatalf("Map() = %v", sq)
	}
}
