package waveshaper

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

func TestScalarShapersBounded(t *testing.T) {
	shapers := []struct {
		name  string
		fn    func(float64) float64
		limit float64
	}{
		{name: "soft", fn: SoftClip, limit: 1},
		{name: "soft8", fn: SoftClip8, limit: 8},
		{name: "tanh", fn: Tanh, limit: 1},
		{name: "hard", fn: HardClip, limit: 1},
		{name: "ojd", fn: OJD, limit: 1},
		{name: "sine", fn: SineFold, limit: 1},
		{name: "asym", fn: AsymFold, limit: 30},
	}

	for _, s := range shapers {
		t.Run(s.name, func(t *testing.T) {
			for x := -40.0; x <= 40; x += 0.01 {
				y := s.fn(x)
				if math.IsNaN(y) || math.Abs(y) > s.limit+1e-9 {
					t.Fatalf("%s(%v) = %v exceeds %v", s.name, x, y, s.limit)
				}
			}
		})
	}
}

func TestShapersPassZero(t *testing.T) {
	for _, fn := range []func(float64) float64{SoftClip, SoftClip8, Tanh, HardClip, OJD, SineFold, AsymFold} {
		if y := fn(0); math.Abs(y) > 1e-12 {
			t.Fatalf("f(0) = %v, want 0", y)
		}
	}
}

func TestSoftClipSaturation(t *testing.T) {
	if got := SoftClip(1.5); math.Abs(got-1) > 1e-12 {
		t.Fatalf("SoftClip(1.5) = %v, want 1", got)
	}

	if got := SoftClip8(12); math.Abs(got-8) > 1e-12 {
		t.Fatalf("SoftClip8(12) = %v, want 8", got)
	}
}

func TestTanhTracksMathTanh(t *testing.T) {
	for x := -2.0; x <= 2; x += 0.05 {
		if diff := math.Abs(Tanh(x) - math.Tanh(x)); diff > 0.03 {
			t.Fatalf("Tanh(%v) off by %v", x, diff)
		}
	}
}

func TestOJDContinuous(t *testing.T) {
	for _, edge := range []float64{-1.7, -0.3, 0.9, 1.1} {
		lo := OJD(edge - 1e-9)
		hi := OJD(edge + 1e-9)
		if math.Abs(lo-hi) > 1e-6 {
			t.Fatalf("OJD discontinuous at %v: %v vs %v", edge, lo, hi)
		}
	}
}

func TestSineFoldMatchesSin(t *testing.T) {
	for x := -3.0; x <= 3; x += 0.013 {
		if diff := math.Abs(SineFold(x) - math.Sin(x)); diff > 1e-3 {
			t.Fatalf("SineFold(%v) off by %v", x, diff)
		}
	}
}

func TestAsymFoldIsAsymmetric(t *testing.T) {
	if math.Abs(AsymFold(2)+AsymFold(-2)) < 1e-3 {
		t.Fatal("AsymFold looks odd-symmetric")
	}
}

func TestBitReduceSteps(t *testing.T) {
	if got := BitReduce(0.51/16, 1); got != 1.0/16 {
		t.Fatalf("BitReduce rounds to %v", got)
	}

	if got := BitReduce(3, 1); got != 1 {
		t.Fatalf("BitReduce(3) = %v, want 1", got)
	}

	if got := BitReduce(0.3, 0); math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("BitReduce with zero drive = %v", got)
	}
}

func TestDispatchCoversTypes(t *testing.T) {
	for _, typ := range Types() {
		k := Dispatch(typ)
		if typ == None {
			if k != nil {
				t.Fatal("None must dispatch to nil")
			}

			continue
		}

		if k == nil {
			t.Fatalf("%v has no kernel", typ)
		}

		out := k(lanes.Vec{-2, -0.1, 0.1, 2}, lanes.Splat(1))
		if !out.IsFinite() {
			t.Fatalf("%v produced %v", typ, out)
		}
	}

	if Dispatch(Type(99)) != nil {
		t.Fatal("unknown type must dispatch to nil")
	}
}

func TestKernelUsesDrive(t *testing.T) {
	k := Dispatch(Hard)
	out := k(lanes.Splat(0.25), lanes.Vec{1, 2, 4, 8})

	if out != (lanes.Vec{0.25, 0.5, 1, 1}) {
		t.Fatalf("hard kernel = %v", out)
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}

	if _, err := ParseType("fuzz"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func BenchmarkSoftKernel(b *testing.B) {
	k := Dispatch(Soft)
	in := lanes.Vec{0.1, -0.4, 0.9, -1.3}
	drive := lanes.Splat(2)

	b.ReportAllocs()
	for b.Loop() {
		in = k(in, drive)
	}
}
