//go:build amd64 && !purego

package sse2

import (
	"testing"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/generic"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestAdvanceMatchesGeneric(t *testing.T) {
	entry := registry.Global.Lookup(cpu.Features{HasSSE2: true, Architecture: "amd64"})
	if entry == nil || entry.Name != "sse2" {
		t.Fatalf("Lookup() = %#v, want sse2", entry)
	}

	for _, n := range []int{4, 9, 64} {
		dst := make([]float64, n)
		src := make([]float64, n)

		for i := range n {
			dst[i] = float64(i) * 0.5
			src[i] = 1 / float64(i+1)
		}

		want := append([]float64(nil), dst...)
		generic.Advance(want, src)
		entry.Advance(dst, src)

		for i := range dst {
			if dst[i] != want[i] {
				t.Fatalf("n=%d index %d: got %v, want %v", n, i, dst[i], want[i])
			}
		}
	}
}
