// Package delay provides the power-of-two ring buffers read by comb kernels
// and the bounded pool that hands them out per voice.
//
// Rings are checked out with Pool.Get when a voice starts and returned with
// Pool.Put when it stops. Kernels only reference a Ring; they never allocate
// or resize one.
package delay
