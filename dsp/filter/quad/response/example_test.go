package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad/response"
)

func ExamplePlotter_MagnitudeDB() {
	p, err := response.NewPlotter(quad.TypeLP24, quad.SubtypeClean, 12, 0)
	if err != nil {
		panic(err)
	}

	fmt.Println(p.MagnitudeDB(50) > -1, p.MagnitudeDB(10000) < -40)
	// Output: true true
}
