// Package lanes provides the four-wide value type used by the quad filter
// kernels.
//
// A Vec holds one float64 per lane. Arithmetic is expressed with value
// methods so kernel code reads as plain per-lane math. Block operations over
// register slices (coefficient advance, denormal flush, masked blending) are
// dispatched once to the best backend reported by algo-vecmath/cpu.
package lanes
