//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Advance:   vecmath.AddBlockInPlace,
	})
}
