package generic

import (
	"github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Advance:   Advance,
	})
}

// Advance adds src to dst element-wise.
func Advance(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}
