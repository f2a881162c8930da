// Package biquad provides second-order section runtimes and the two
// realizations the synth filter kernels interpolate per sample.
//
// [Coefficients] is the direct-form transfer function. [Section] runs it in
// Direct Form II Transposed and serves as the reference response. Because
// direct a/b coefficients become ill-conditioned under audio-rate
// modulation, kernels use either the normalized lattice ([Lattice]) or the
// coupled rotated-pole form ([Coupled]); both are linear in their
// coefficients, so ramping them per sample stays well-behaved.
package biquad
