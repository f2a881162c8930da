// Package oversample converts four-lane blocks between the host rate and
// the filter kernel rate with a polyphase windowed-sinc FIR.
//
// An [Oversampler] keeps independent history per lane, so streaming
// block-by-block gives the same result as one long call. Up and Down do
// not allocate.
package oversample
