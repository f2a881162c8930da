package oversample

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

const maxFactor = 16

// ErrInvalidFactor indicates an oversampling factor outside [1, 16].
var ErrInvalidFactor = errors.New("oversample: invalid factor")

// Quality controls default anti-aliasing filter settings.
type Quality int

const (
	// QualityFast prioritizes lower CPU usage.
	QualityFast Quality = iota
	// QualityBalanced is the default quality/performance trade-off.
	QualityBalanced
	// QualityBest prioritizes stopband attenuation and passband flatness.
	QualityBest
)

// Profile exposes default filter parameters for each quality mode.
type Profile struct {
	TapsPerPhase      int
	CutoffScale       float64
	KaiserBeta        float64
	NominalStopbandDB float64
}

// QualityProfile returns the default profile used by quality mode q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{TapsPerPhase: 8, CutoffScale: 0.85, KaiserBeta: 5.0, NominalStopbandDB: 50}
	case QualityBest:
		return Profile{TapsPerPhase: 48, CutoffScale: 0.95, KaiserBeta: 9.0, NominalStopbandDB: 90}
	default:
		return Profile{TapsPerPhase: 24, CutoffScale: 0.9, KaiserBeta: 7.5, NominalStopbandDB: 75}
	}
}

type config struct {
	quality      Quality
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
}

// Option configures an Oversampler.
type Option func(*config)

// WithQuality selects a predefined anti-aliasing quality mode.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithTapsPerPhase overrides taps per polyphase branch.
func WithTapsPerPhase(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.tapsPerPhase = n
		}
	}
}

// WithCutoffScale overrides the cutoff relative to the host Nyquist, in
// (0, 1].
func WithCutoffScale(v float64) Option {
	return func(cfg *config) {
		if v > 0 && v <= 1 {
			cfg.cutoffScale = v
		}
	}
}

// WithKaiserBeta overrides the Kaiser window beta parameter.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta > 0 {
			cfg.kaiserBeta = beta
		}
	}
}

func (c config) finalized() config {
	p := QualityProfile(c.quality)
	if c.tapsPerPhase <= 0 {
		c.tapsPerPhase = p.TapsPerPhase
	}

	if c.cutoffScale <= 0 || c.cutoffScale > 1 {
		c.cutoffScale = p.CutoffScale
	}

	if c.kaiserBeta <= 0 {
		c.kaiserBeta = p.KaiserBeta
	}

	return c
}

// history is a double-written ring so the newest n samples are always
// contiguous.
type history struct {
	buf []float64
	pos int
}

func newHistory(n int) history {
	return history{buf: make([]float64, 2*n)}
}

func (h *history) push(x float64) []float64 {
	n := len(h.buf) / 2
	h.buf[h.pos] = x
	h.buf[h.pos+n] = x

	h.pos++
	if h.pos == n {
		h.pos = 0
	}

	return h.buf[h.pos : h.pos+n]
}

func (h *history) reset() {
	clear(h.buf)
	h.pos = 0
}

// Oversampler converts four lanes between a host rate and factor times
// that rate. It is not safe for concurrent use.
type Oversampler struct {
	factor  int
	quality Quality
	taps    []float64

	phases [][]float64
	down   []float64

	upHist   [lanes.Width]history
	downHist [lanes.Width]history
}

// New returns an oversampler for the given integer factor.
func New(factor int, opts ...Option) (*Oversampler, error) {
	if factor < 1 || factor > maxFactor {
		return nil, ErrInvalidFactor
	}

	cfg := config{quality: QualityBalanced}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cfg = cfg.finalized()

	taps, err := designPrototype(factor, cfg)
	if err != nil {
		return nil, err
	}

	o := &Oversampler{
		factor:  factor,
		quality: cfg.quality,
		taps:    taps,
		phases:  splitPhases(taps, factor),
		down:    reversed(taps),
	}

	for lane := range lanes.Width {
		o.upHist[lane] = newHistory(cfg.tapsPerPhase)
		o.downHist[lane] = newHistory(len(taps))
	}

	return o, nil
}

// Factor returns the rate ratio.
func (o *Oversampler) Factor() int {
	return o.factor
}

// Quality returns the configured quality mode.
func (o *Oversampler) Quality() Quality {
	return o.quality
}

// TapsPerPhase returns the taps in each interpolation branch.
func (o *Oversampler) TapsPerPhase() int {
	return len(o.taps) / o.factor
}

// Latency returns the round-trip delay of Up followed by Down in host
// samples. Up delays by (N-1)/2 oversampled samples and Down reads the
// filter output at the last sample of each group of Factor, so the sum
// is (N-Factor)/Factor, which is TapsPerPhase-1.
func (o *Oversampler) Latency() float64 {
	return float64(len(o.taps)-o.factor) / float64(o.factor)
}

// Reset clears the history of every lane.
func (o *Oversampler) Reset() {
	for lane := range lanes.Width {
		o.ResetLane(lane)
	}
}

// ResetLane clears the history of one lane.
func (o *Oversampler) ResetLane(lane int) {
	if lane < 0 || lane >= lanes.Width {
		return
	}

	o.upHist[lane].reset()
	o.downHist[lane].reset()
}

// Up interpolates src into dst for one lane. dst must hold
// len(src)*Factor samples.
func (o *Oversampler) Up(dst, src []float64, lane int) {
	if len(dst) != len(src)*o.factor {
		panic("oversample: Up length mismatch")
	}

	h := &o.upHist[lane]

	for i, x := range src {
		window := h.push(x)
		out := dst[i*o.factor : (i+1)*o.factor]

		for p, branch := range o.phases {
			out[p] = vecmath.DotProduct(window, branch)
		}
	}
}

// Down filters src and keeps every Factor-th sample into dst for one
// lane. src must hold len(dst)*Factor samples.
func (o *Oversampler) Down(dst, src []float64, lane int) {
	if len(src) != len(dst)*o.factor {
		panic("oversample: Down length mismatch")
	}

	h := &o.downHist[lane]

	for i := range dst {
		block := src[i*o.factor : (i+1)*o.factor]
		for _, x := range block[:o.factor-1] {
			h.push(x)
		}

		dst[i] = vecmath.DotProduct(h.push(block[o.factor-1]), o.down)
	}
}

// Prototype returns a copy of the lowpass taps.
func (o *Oversampler) Prototype() []float64 {
	return append([]float64(nil), o.taps...)
}
