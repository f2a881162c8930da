// Package interp provides fractional-delay interpolation for the delay
// lines read by comb kernels and for resampling response curves.
//
//   - [Linear2]:    2-point linear interpolation
//   - [Hermite4]:   4-point cubic Hermite
//   - [SincTable]:  12-tap Kaiser-windowed sinc, 256 phases, built once
package interp
