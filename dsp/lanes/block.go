package lanes

import (
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	blockOps     *registry.OpEntry
	blockOpsOnce sync.Once
)

func ops() *registry.OpEntry {
	blockOpsOnce.Do(initBlockOps)
	return blockOps
}

func initBlockOps() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("lanes: no block backend registered")
	}

	blockOps = entry
}

// Init resolves the block backend. Later calls are no-ops.
func Init() {
	ops()
}

// Backend returns the name of the selected block backend.
func Backend() string {
	return ops().Name
}

// Advance adds deltas to coefficients lane-wise. The slices must have equal
// length.
func Advance(coefficients, deltas []Vec) {
	if len(coefficients) != len(deltas) {
		panic("lanes: Advance length mismatch")
	}

	ops().Advance(flat(coefficients), flat(deltas))
}

// FlushDenormals snaps every lane of regs with magnitude below threshold to
// zero.
func FlushDenormals(regs []Vec, threshold float64) {
	x := flat(regs)
	for i, v := range x {
		if v > -threshold && v < threshold {
			x[i] = 0
		}
	}
}

func flat(v []Vec) []float64 {
	if len(v) == 0 {
		return nil
	}

	return unsafe.Slice(&v[0][0], len(v)*Width)
}
