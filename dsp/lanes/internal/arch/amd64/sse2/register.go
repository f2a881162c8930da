//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Advance:   vecmath.AddBlockInPlace,
	})
}
