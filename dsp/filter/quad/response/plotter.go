package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/delay"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/interp"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

const (
	defaultFFTSize = 8192
	minFFTSize     = 64
	maxFFTSize     = 1 << 16

	defaultImpulseLevel = 0.1
	floorDB             = -240.0
)

// Option mutates Plotter configuration.
type Option func(*config) error

type config struct {
	fftSize   int
	processor core.ProcessorConfig
	tuning    quad.Tuning
	level     float64
}

func defaultConfig() config {
	return config{
		fftSize:   defaultFFTSize,
		processor: core.DefaultProcessorConfig(),
		level:     defaultImpulseLevel,
	}
}

// WithFFTSize sets the rendered impulse length. n must be a power of two.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < minFFTSize || n > maxFFTSize || n&(n-1) != 0 {
			return fmt.Errorf("response: fft size must be a power of two in [%d, %d]: %d", minFFTSize, maxFFTSize, n)
		}

		cfg.fftSize = n

		return nil
	}
}

// WithProcessorConfig sets the host rate and oversampling the kernel is
// measured at.
func WithProcessorConfig(pc core.ProcessorConfig) Option {
	return func(cfg *config) error {
		if pc.SampleRate <= 0 || pc.OversampleFactor <= 0 {
			return fmt.Errorf("response: invalid processor config: %+v", pc)
		}

		cfg.processor = pc

		return nil
	}
}

// WithTuning maps the cutoff note. The default is equal temperament.
func WithTuning(t quad.Tuning) Option {
	return func(cfg *config) error {
		cfg.tuning = t

		return nil
	}
}

// WithImpulseLevel sets the impulse height. Nonlinear filters respond
// differently to loud and quiet impulses; the result is normalized by
// the level either way.
func WithImpulseLevel(level float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(level) || level <= 0 || level > 1 {
			return fmt.Errorf("response: impulse level must be in (0, 1]: %g", level)
		}

		cfg.level = level

		return nil
	}
}

// Point is one sample of a magnitude curve.
type Point struct {
	Freq float64
	DB   float64
}

// Plotter holds the measured magnitude spectrum of one filter setting.
type Plotter struct {
	typ        quad.Type
	sub        quad.Subtype
	kernelRate float64
	fftSize    int
	impulse    []float64
	mags       []float64
}

// NewPlotter renders the impulse response of filter t/s at the given
// cutoff note and resonance. An unknown pair measures as silence.
func NewPlotter(t quad.Type, s quad.Subtype, cutoffNote, resonance float64, opts ...Option) (*Plotter, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.tuning == nil {
		cfg.tuning = quad.EqualTemperament{Rate: cfg.processor.SampleRate}
	}

	p := &Plotter{
		typ:        t,
		sub:        s,
		kernelRate: cfg.processor.KernelRate(),
		fftSize:    cfg.fftSize,
	}

	impulse, err := render(cfg, t, s, cutoffNote, resonance)
	if err != nil {
		return nil, err
	}

	p.impulse = impulse

	mags, err := magnitudes(impulse)
	if err != nil {
		return nil, err
	}

	p.mags = mags

	return p, nil
}

func render(cfg config, t quad.Type, s quad.Subtype, note, reso float64) ([]float64, error) {
	maker, err := quad.NewCoefficientMaker(
		quad.WithBlockSize(cfg.fftSize),
		quad.WithOversampleFactor(cfg.processor.OversampleFactor),
	)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	quad.InitTables()

	rf := quad.NewRegisterFile()
	rf.Active = lanes.MaskOf(true, false, false, false)

	ring, err := delay.NewRing(quad.CombMaxDelayExtended)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	rf.DelayBuffers[0] = ring

	maker.MakeCoefficients(note, reso, t, s, cfg.tuning)
	maker.Instantize()
	rf.LoadLane(0, maker)

	out := make([]float64, cfg.fftSize)

	kernel := quad.Dispatch(t, s)
	if kernel == nil {
		return out, nil
	}

	gain := 1 / cfg.level
	x := lanes.Vec{cfg.level}

	for i := range out {
		out[i] = kernel(rf, x)[0] * gain
		x = lanes.Vec{}
	}

	return out, nil
}

func magnitudes(impulse []float64) ([]float64, error) {
	n := len(impulse)

	plan, err := algofft.NewPlanReal64(n)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	bins := make([]complex128, n/2+1)
	if err := plan.Forward(bins, impulse); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	re := make([]float64, len(bins))
	im := make([]float64, len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mags := make([]float64, len(bins))
	vecmath.Magnitude(mags, re, im)

	return mags, nil
}

// Filter returns the measured filter.
func (p *Plotter) Filter() (quad.Type, quad.Subtype) {
	return p.typ, p.sub
}

// KernelRate returns the rate the kernel was clocked at.
func (p *Plotter) KernelRate() float64 {
	return p.kernelRate
}

// Impulse returns the rendered impulse response. The slice is shared.
func (p *Plotter) Impulse() []float64 {
	return p.impulse
}

// Magnitude returns the linear gain at freq Hz, interpolated between FFT
// bins. Frequencies outside [0, KernelRate/2] are clamped.
func (p *Plotter) Magnitude(freq float64) float64 {
	if !core.IsFinite(freq) {
		return 0
	}

	pos := freq / p.kernelRate * float64(p.fftSize)

	return math.Max(0, interp.HermiteAt(p.mags, pos))
}

// MagnitudeDB returns Magnitude in decibels, floored at -240 dB.
func (p *Plotter) MagnitudeDB(freq float64) float64 {
	return math.Max(floorDB, core.LinearToDB(p.Magnitude(freq)))
}

// Curve samples MagnitudeDB at n log-spaced frequencies from lo to hi.
func (p *Plotter) Curve(lo, hi float64, n int) []Point {
	if n <= 0 || lo <= 0 || hi <= lo {
		return nil
	}

	out := make([]Point, n)
	if n == 1 {
		out[0] = Point{Freq: lo, DB: p.MagnitudeDB(lo)}
		return out
	}

	ratio := math.Log(hi / lo)
	for i := range out {
		f := lo * math.Exp(ratio*float64(i)/float64(n-1))
		out[i] = Point{Freq: f, DB: p.MagnitudeDB(f)}
	}

	return out
}
