package response

import (
	"testing"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
)

func BenchmarkNewPlotter(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		if _, err := NewPlotter(quad.TypeVintageLadder, quad.SubtypeHuovilainen, 24, 0.8, WithFFTSize(4096)); err != nil {
			b.Fatal(err)
		}
	}
}
