// Package waveshaper provides the per-sample saturators used by the quad
// filter unit.
//
// Every shaper has a scalar form (SoftClip, HardClip, OJD, ...) and a
// four-lane Kernel selected with Dispatch. The sine and asymmetric folds are
// read from 1024-entry tables that are built once on first use; InitTables
// forces that step ahead of the audio thread.
package waveshaper
