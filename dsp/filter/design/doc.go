// Package design provides the biquad prototypes the synth filter
// coefficient maker starts from.
//
// Resonant designs RBJ sections from a normalized angular frequency and a
// damping value (alpha = sin(w0) * damping), which may be negative so that
// "rough" resonance curves can push poles past the unit circle. The
// Hz-based helpers (Lowpass, Highpass, ...) wrap it with the usual Q
// parameterization. Prewarp and OnePoleGain serve the zero-delay-feedback
// ladder and Sallen-Key models.
package design
