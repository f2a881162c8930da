//go:build amd64 && !purego

package lanes

import (
	"sync"
	"testing"

	archregistry "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetBlockDispatchForTest() {
	blockOps = nil
	blockOpsOnce = sync.Once{}
}

func TestBlockDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name:     "generic-forced",
			features: cpu.Features{ForceGeneric: true, Architecture: "amd64"},
			wantImpl: "generic",
		},
		{
			name:     "sse2",
			features: cpu.Features{HasSSE2: true, Architecture: "amd64"},
			wantImpl: "sse2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer cpu.ResetDetection()
			defer resetBlockDispatchForTest()

			resetBlockDispatchForTest()

			entry := archregistry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil || entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %#v", tt.wantImpl, entry)
			}

			if Backend() != tt.wantImpl {
				t.Fatalf("Backend() = %q, want %q", Backend(), tt.wantImpl)
			}

			coeffs := []Vec{{1, 2, 3, 4}}
			Advance(coeffs, []Vec{Splat(1)})
			if coeffs[0] != (Vec{2, 3, 4, 5}) {
				t.Fatalf("Advance() = %v", coeffs[0])
			}
		})
	}
}
