// Package response measures the magnitude response of a quad filter by
// running its kernel on an impulse and transforming the result.
//
// It is meant for displays and diagnostics, not the audio path: building a
// Plotter allocates and runs a full FFT.
//
//	p, err := response.NewPlotter(quad.TypeLP24, quad.SubtypeClean, 12, 0.7)
//	if err != nil { ... }
//	db := p.MagnitudeDB(1000)
package response
