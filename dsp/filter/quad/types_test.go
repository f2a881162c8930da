package quad

import "testing"

func TestTypesCoverEnumeration(t *testing.T) {
	types := Types()
	if len(types) != int(numTypes) {
		t.Fatalf("Types() len=%d, want %d", len(types), numTypes)
	}

	if types[0] != TypeNone {
		t.Fatalf("first type = %v, want TypeNone", types[0])
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		name := typ.String()
		if seen[name] {
			t.Fatalf("duplicate type name %q", name)
		}

		seen[name] = true

		parsed, err := ParseType(name)
		if err != nil || parsed != typ {
			t.Fatalf("ParseType(%q) = %v, %v; want %v", name, parsed, err, typ)
		}
	}
}

func TestSubtypeCounts(t *testing.T) {
	tests := []struct {
		typ  Type
		want int
	}{
		{TypeNone, 0},
		{TypeLP12, 4},
		{TypeBP24, 4},
		{TypeNotch, 2},
		{TypeAllpass, 1},
		{TypeLadder, 4},
		{TypeVintageLadder, 4},
		{TypeDiode, 4},
		{TypeK35LP, 5},
		{TypeCutoffWarpHP, 12},
		{TypeResonanceWarpLP, 8},
		{TypeTriPole, 8},
		{TypeCombNeg, 2},
		{TypeSampleHold, 1},
	}

	for _, tc := range tests {
		if got := tc.typ.SubtypeCount(); got != tc.want {
			t.Fatalf("%v.SubtypeCount()=%d, want %d", tc.typ, got, tc.want)
		}
	}
}

func TestHasSubtype(t *testing.T) {
	tests := []struct {
		typ  Type
		sub  Subtype
		want bool
	}{
		{TypeNone, 0, true},
		{TypeNone, 1, false},
		{TypeLP12, SubtypeSVF, true},
		{TypeLP12, 4, false},
		{TypeLP12, -1, false},
		{TypeLP12, SubtypeExtended, false},
		{TypeCombPos, SubtypeExtended | SubtypeCombFullWet, true},
		{TypeCombPos, 0x200, false},
		{TypeCombNeg, SubtypeExtended | 2, false},
		{Type(99), 0, false},
	}

	for _, tc := range tests {
		if got := tc.typ.HasSubtype(tc.sub); got != tc.want {
			t.Fatalf("%v.HasSubtype(%#x)=%v, want %v", tc.typ, int(tc.sub), got, tc.want)
		}
	}
}

func TestSubtypeNames(t *testing.T) {
	tests := []struct {
		typ  Type
		sub  Subtype
		want string
	}{
		{TypeLP24, SubtypeDriven, "Driven"},
		{TypeCutoffWarpLP, 0, "1 Stage Tanh"},
		{TypeCutoffWarpLP, 5, "2 Stages Soft Clip"},
		{TypeCutoffWarpLP, 11, "4 Stages OJD"},
		{TypeResonanceWarpHP, 7, "4 Stages Soft Clip"},
		{TypeTriPole, 3, "Low High Low, Third"},
		{TypeCombPos, SubtypeExtended, "50% Wet, Extended"},
		{TypeNone, 0, ""},
		{TypeLP12, 9, ""},
	}

	for _, tc := range tests {
		if got := tc.typ.SubtypeName(tc.sub); got != tc.want {
			t.Fatalf("%v.SubtypeName(%d)=%q, want %q", tc.typ, tc.sub, got, tc.want)
		}
	}
}

func TestWarpLayoutMatchesNames(t *testing.T) {
	for v := range TypeCutoffWarpLP.SubtypeCount() {
		stages, shaper := warpLayout(Subtype(v))
		if stages < 1 || stages > maxWarpStages {
			t.Fatalf("variant %d: stages=%d", v, stages)
		}

		if shaper < warpTanh || shaper > warpOJD {
			t.Fatalf("variant %d: shaper=%d", v, shaper)
		}
	}

	stages, shaper := warpLayout(6)
	if stages != 3 || shaper != warpSoftClip {
		t.Fatalf("warpLayout(6) = %d, %d; want 3 stages soft clip", stages, shaper)
	}
}

func TestInvalidTypeString(t *testing.T) {
	if got := Type(-3).String(); got != "Type(-3)" {
		t.Fatalf("String()=%q", got)
	}

	if _, err := ParseType("Moog"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}
