// Package quad implements the four-lane synth filter unit: a coefficient
// maker that compiles cutoff/resonance into ramped coefficient vectors, a
// register file shared by four voices, and a bank of per-sample kernels.
//
// Typical use per audio block:
//
//	maker.MakeCoefficients(cutoff, reso, quad.TypeLP12, quad.SubtypeSVF, tuning)
//	rf.LoadLane(lane, maker)
//	kernel := quad.Dispatch(quad.TypeLP12, quad.SubtypeSVF)
//	for i := range block {
//		out[i] = kernel(rf, in[i])
//	}
//	rf.FlushDenormals()
//
// Kernels never allocate or return errors. Unknown type/subtype pairs
// produce zero coefficients and a nil kernel, which callers treat as
// silence.
package quad
