// Package window provides the Kaiser window and the normalized sinc used
// by the band-limited interpolators: the comb filters' fractional delay
// table and the oversampling prototype lowpass.
package window
