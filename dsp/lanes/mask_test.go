package lanes

import (
	"math"
	"testing"
)

func TestMaskSelect(t *testing.T) {
	m := MaskOf(true, false, true, false)
	a := Vec{1, 2, 3, 4}
	b := Vec{-1, math.NaN(), -3, -4}

	got := m.Select(a, b)
	if got[0] != 1 || got[2] != 3 || got[3] != -4 {
		t.Fatalf("Select() = %v", got)
	}

	if !math.IsNaN(got[1]) {
		t.Fatalf("lane 1 should come from b, got %v", got[1])
	}

	if m.Select(b, a)[1] != 2 {
		t.Fatal("unselected lane leaked NaN")
	}
}

func TestMaskLanes(t *testing.T) {
	var m Mask
	if m.Any() {
		t.Fatal("zero mask reports lanes set")
	}

	m = m.With(2, true)
	if !m.Lane(2) || m.Lane(0) || !m.Any() {
		t.Fatalf("With(2) = %#v", m)
	}

	if m.With(2, false).Any() {
		t.Fatal("clearing lane 2 left lanes set")
	}

	for i := range Width {
		if !AllLanes.Lane(i) {
			t.Fatalf("AllLanes lane %d not set", i)
		}
	}
}

func TestGreater(t *testing.T) {
	m := Greater(Vec{1, 0, -1, 2}, Splat(0))
	if m != MaskOf(true, false, false, true) {
		t.Fatalf("Greater() = %#v", m)
	}
}
