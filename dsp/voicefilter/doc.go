// Package voicefilter wires the quad filter unit into per-voice signal
// paths. A Slot owns one register file shared by four voices, their
// coefficient makers and their pooled comb delay lines. A Chain runs two
// slots around a waveshaper with serial, serial-feedback or parallel
// routing, then applies output gain and peak metering. A slot set to
// quad.TypeNone passes its input through.
//
// Voice start and stop are control-path calls that may touch the delay
// pool and the logger. Process never allocates, locks or logs.
package voicefilter
