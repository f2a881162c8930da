package quad

import (
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
)

const (
	defaultBlockSize        = 64
	defaultOversampleFactor = 2
	maxBlockSize            = 1 << 16
	maxOversampleFactor     = 16

	minCutoffNote = -55.0
	maxCutoffNote = 75.0

	// smoothingWeight is the share of a new target taken per block.
	smoothingWeight = 0.2
)

// Option mutates CoefficientMaker configuration.
type Option func(*config) error

type config struct {
	blockSize        int
	oversampleFactor int
	ignoreTuning     bool
}

func defaultConfig() config {
	return config{
		blockSize:        defaultBlockSize,
		oversampleFactor: defaultOversampleFactor,
	}
}

// WithBlockSize sets the number of kernel calls between two
// MakeCoefficients requests. Deltas spread each change over that many
// samples.
func WithBlockSize(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > maxBlockSize {
			return fmt.Errorf("quad: block size must be in [1, %d]: %d", maxBlockSize, n)
		}

		cfg.blockSize = n

		return nil
	}
}

// WithOversampleFactor sets the ratio of kernel rate to host sample rate.
func WithOversampleFactor(factor int) Option {
	return func(cfg *config) error {
		if factor < 1 || factor > maxOversampleFactor {
			return fmt.Errorf("quad: oversample factor must be in [1, %d]: %d", maxOversampleFactor, factor)
		}

		cfg.oversampleFactor = factor

		return nil
	}
}

// WithIgnoreTuning maps cutoff notes through 12-tone equal temperament
// regardless of the Tuning passed to MakeCoefficients. The tuning still
// supplies the sample rate.
func WithIgnoreTuning(ignore bool) Option {
	return func(cfg *config) error {
		cfg.ignoreTuning = ignore

		return nil
	}
}

// WithProcessorConfig applies the block size and oversample factor of pc.
func WithProcessorConfig(pc core.ProcessorConfig) Option {
	return func(cfg *config) error {
		if err := WithBlockSize(pc.BlockSize)(cfg); err != nil {
			return err
		}

		return WithOversampleFactor(pc.OversampleFactor)(cfg)
	}
}

type coeffs = [NumCoefficients]float64

// CoefficientMaker turns cutoff and resonance into coefficient ramps for
// one filter lane. It is not safe for concurrent use.
type CoefficientMaker struct {
	cfg config

	start    coeffs
	current  coeffs
	target   coeffs
	smoothed coeffs
	delta    coeffs

	firstRun bool
}

// NewCoefficientMaker returns a maker in its initial state.
func NewCoefficientMaker(opts ...Option) (*CoefficientMaker, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &CoefficientMaker{cfg: cfg, firstRun: true}, nil
}

// BlockSize returns the number of kernel calls one ramp spans.
func (m *CoefficientMaker) BlockSize() int {
	return m.cfg.blockSize
}

// OversampleFactor returns the kernel-rate multiplier.
func (m *CoefficientMaker) OversampleFactor() int {
	return m.cfg.oversampleFactor
}

// MakeCoefficients designs the coefficients of filter (t, s) for the
// given cutoff note (semitones relative to A440) and resonance in [0, 1],
// then updates the ramp. Unknown (t, s) pairs design silence.
func (m *CoefficientMaker) MakeCoefficients(cutoffNote, resonance float64, t Type, s Subtype, tuning Tuning) {
	if tuning == nil {
		tuning = EqualTemperament{}
	}

	if m.cfg.ignoreTuning {
		tuning = EqualTemperament{Rate: tuning.SampleRate()}
	}

	if !core.IsFinite(cutoffNote) {
		cutoffNote = 0
	}

	if !core.IsFinite(resonance) {
		resonance = 0
	}

	in := designInput{
		note:       core.Clamp(cutoffNote, minCutoffNote, maxCutoffNote),
		reso:       core.Clamp(resonance, 0, 1),
		tuning:     tuning,
		hostRate:   tuning.SampleRate(),
		kernelRate: tuning.SampleRate() * float64(m.cfg.oversampleFactor),
	}
	in.freq = ReferenceFrequency * tuning.NoteToPitch(in.note)

	m.target = designCoefficients(in, t, s)
	m.update()
}

func (m *CoefficientMaker) update() {
	for i := range m.target {
		if !core.IsFinite(m.target[i]) {
			m.target[i] = 0
		}
	}

	if m.firstRun {
		m.start = m.target
		m.current = m.target
		m.smoothed = m.target
		m.delta = coeffs{}
		m.firstRun = false

		return
	}

	inv := 1 / float64(m.cfg.blockSize)

	for i := range m.target {
		m.smoothed[i] = (1-smoothingWeight)*m.smoothed[i] + smoothingWeight*m.target[i]
		m.start[i] = m.current[i]
		m.delta[i] = (m.smoothed[i] - m.current[i]) * inv
		m.current[i] = m.smoothed[i]
	}
}

// Reset returns the maker to its initial state; the next request jumps
// straight to its target.
func (m *CoefficientMaker) Reset() {
	m.start = coeffs{}
	m.current = coeffs{}
	m.target = coeffs{}
	m.smoothed = coeffs{}
	m.delta = coeffs{}
	m.firstRun = true
}

// Instantize drops the pending ramp so the next LoadLane starts at the
// smoothed value with zero deltas.
func (m *CoefficientMaker) Instantize() {
	m.start = m.smoothed
	m.current = m.smoothed
	m.delta = coeffs{}
}

// Start returns the values a lane holds at the beginning of the block.
func (m *CoefficientMaker) Start() [NumCoefficients]float64 {
	return m.start
}

// Current returns the values a lane reaches at the end of the block.
func (m *CoefficientMaker) Current() [NumCoefficients]float64 {
	return m.current
}

// Target returns the raw design of the latest request.
func (m *CoefficientMaker) Target() [NumCoefficients]float64 {
	return m.target
}

// Delta returns the per-sample increments.
func (m *CoefficientMaker) Delta() [NumCoefficients]float64 {
	return m.delta
}
