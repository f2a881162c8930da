package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(32),
		core.WithOversampleFactor(4),
	)

	fmt.Printf("kernel %.0f Hz, coefficients every %d samples\n", cfg.KernelRate(), cfg.BlockSize)

	// Output:
	// kernel 176400 Hz, coefficients every 32 samples
}

func ExampleClamp() {
	fmt.Println(core.Clamp(-80, -55, 75), core.Clamp(12, -55, 75))

	// Output:
	// -55 12
}
