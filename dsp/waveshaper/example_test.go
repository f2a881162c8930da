package waveshaper_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

func ExampleDispatch() {
	shape := waveshaper.Dispatch(waveshaper.Hard)
	out := shape(lanes.Vec{-2, -0.5, 0.5, 2}, lanes.Splat(1))

	fmt.Println(out)

	// Output:
	// [-1 -0.5 0.5 1]
}
