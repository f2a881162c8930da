package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestLookup(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 10})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"sse2", cpu.Features{HasSSE2: true}, "sse2"},
		{"neon", cpu.Features{HasNEON: true}, "neon"},
		{"forced", cpu.Features{HasSSE2: true, ForceGeneric: true}, "generic"},
		{"bare", cpu.Features{}, "generic"},
	}

	for _, tt := range tests {
		if entry := reg.Lookup(tt.features); entry == nil || entry.Name != tt.want {
			t.Fatalf("%s: got %#v, want %q", tt.name, entry, tt.want)
		}
	}

	if entry := (&OpRegistry{}).Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("empty registry returned %#v", entry)
	}
}
