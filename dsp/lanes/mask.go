package lanes

import "math"

const allBits = ^uint64(0)

// Mask is a per-lane all-bits flag. A set lane holds 0xFFFF_FFFF_FFFF_FFFF.
type Mask [Width]uint64

// AllLanes has every lane set.
var AllLanes = Mask{allBits, allBits, allBits, allBits}

// MaskOf builds a Mask from per-lane booleans.
func MaskOf(l0, l1, l2, l3 bool) Mask {
	return Mask{bitsOf(l0), bitsOf(l1), bitsOf(l2), bitsOf(l3)}
}

func bitsOf(on bool) uint64 {
	if on {
		return allBits
	}

	return 0
}

// Lane reports whether lane i is set.
func (m Mask) Lane(i int) bool {
	return m[i] != 0
}

// With returns m with lane i set to on.
func (m Mask) With(i int, on bool) Mask {
	m[i] = bitsOf(on)
	return m
}

// Any reports whether at least one lane is set.
func (m Mask) Any() bool {
	return m[0]|m[1]|m[2]|m[3] != 0
}

// Select returns a where the mask is set and b elsewhere, blending on raw
// bits so NaN payloads in unselected lanes never leak.
func (m Mask) Select(a, b Vec) Vec {
	var out Vec
	for i := range out {
		ab := math.Float64bits(a[i])
		bb := math.Float64bits(b[i])
		out[i] = math.Float64frombits((ab & m[i]) | (bb &^ m[i]))
	}

	return out
}

// Greater returns a mask of lanes where a > b.
func Greater(a, b Vec) Mask {
	return Mask{bitsOf(a[0] > b[0]), bitsOf(a[1] > b[1]), bitsOf(a[2] > b[2]), bitsOf(a[3] > b[3])}
}
