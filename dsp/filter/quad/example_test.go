package quad_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

func ExampleType_SubtypeName() {
	for _, typ := range []quad.Type{quad.TypeLP24, quad.TypeVintageLadder, quad.TypeCombPos} {
		fmt.Printf("%s: %d subtypes, first %q\n", typ, typ.SubtypeCount(), typ.SubtypeName(0))
	}
	// Output:
	// LP 24 dB: 4 subtypes, first "Clean"
	// LP Vintage Ladder: 4 subtypes, first "Type 1"
	// Comb +: 2 subtypes, first "50% Wet"
}

func ExampleCoefficientMaker() {
	maker, err := quad.NewCoefficientMaker(quad.WithBlockSize(32))
	if err != nil {
		panic(err)
	}

	maker.MakeCoefficients(0, 0.5, quad.TypeLP12, quad.SubtypeSVF, quad.EqualTemperament{Rate: 48000})

	c := maker.Current()
	fmt.Printf("F1=%.6f Q1=%.6f clip=%.6f gain=%.6f\n", c[0], c[1], c[2], c[3])
	// Output:
	// F1=0.014399 Q1=0.515094 clip=0.001018 gain=0.540381
}

func ExampleDispatch() {
	quad.InitTables()

	maker, err := quad.NewCoefficientMaker()
	if err != nil {
		panic(err)
	}

	maker.MakeCoefficients(24, 0, quad.TypeLadder, quad.Subtype24dB, nil)

	rf := quad.NewRegisterFile()
	for lane := range lanes.Width {
		rf.LoadLane(lane, maker)
	}

	kernel := quad.Dispatch(quad.TypeLadder, quad.Subtype24dB)

	var out lanes.Vec
	for range 5000 {
		out = kernel(rf, lanes.Splat(0.25))
	}

	fmt.Printf("%.4f\n", out[0])
	fmt.Println(quad.Dispatch(quad.TypeNone, 0) == nil)
	// Output:
	// 0.2497
	// true
}
