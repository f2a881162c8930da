package quad

import "math"

const (
	// ReferenceFrequency is the pitch of note 0.
	ReferenceFrequency = 440.0
	defaultSampleRate  = 48000.0
)

// Tuning maps notes (semitones relative to A440) to frequency ratios and
// provides the host sample rate.
type Tuning interface {
	// NoteToPitch returns the frequency ratio of note relative to A440.
	NoteToPitch(note float64) float64
	SampleRate() float64
}

// EqualTemperament is 12-tone equal temperament at a fixed sample rate.
type EqualTemperament struct {
	Rate float64
}

// NoteToPitch returns 2^(note/12).
func (e EqualTemperament) NoteToPitch(note float64) float64 {
	return pitchRatio(note)
}

// SampleRate returns Rate, or 48 kHz when Rate is not positive.
func (e EqualTemperament) SampleRate() float64 {
	if e.Rate > 0 {
		return e.Rate
	}

	return defaultSampleRate
}

// ScaleTuning maps notes through a repeating table of cent offsets. Cents
// holds the offset of each scale degree above note 0; the last entry is
// the period (1200 for an octave-repeating scale). Fractional notes
// interpolate linearly between degrees.
type ScaleTuning struct {
	Rate  float64
	Cents []float64
}

// NoteToPitch returns the frequency ratio of note relative to A440.
// An empty or non-positive period falls back to equal temperament.
func (s ScaleTuning) NoteToPitch(note float64) float64 {
	n := len(s.Cents)
	if n == 0 || s.Cents[n-1] <= 0 {
		return pitchRatio(note)
	}

	lower := math.Floor(note)
	frac := note - lower

	c0 := s.centsAt(int(lower))
	c1 := s.centsAt(int(lower) + 1)

	return math.Exp2((c0 + frac*(c1-c0)) / 1200)
}

func (s ScaleTuning) centsAt(degree int) float64 {
	n := len(s.Cents)
	period := s.Cents[n-1]

	octave := degree / n
	step := degree % n
	if step < 0 {
		step += n
		octave--
	}

	base := float64(octave) * period
	if step == 0 {
		return base
	}

	return base + s.Cents[step-1]
}

// SampleRate returns Rate, or 48 kHz when Rate is not positive.
func (s ScaleTuning) SampleRate() float64 {
	if s.Rate > 0 {
		return s.Rate
	}

	return defaultSampleRate
}
