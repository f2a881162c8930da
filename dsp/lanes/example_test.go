package lanes_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

func ExampleMask_Select() {
	active := lanes.MaskOf(true, false, true, false)
	out := active.Select(lanes.Vec{1, 2, 3, 4}, lanes.Splat(0))

	fmt.Println(out)

	// Output:
	// [1 0 3 0]
}
