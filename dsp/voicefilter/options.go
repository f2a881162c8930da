package voicefilter

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/delay"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

const (
	defaultPoolSize = 16

	minDriveDB  = -24.0
	maxDriveDB  = 48.0
	minOutputDB = -96.0
	maxOutputDB = 24.0
)

// Option mutates Slot and Chain configuration.
type Option func(*config) error

type config struct {
	processor    core.ProcessorConfig
	tuning       quad.Tuning
	ignoreTuning bool
	pool         *delay.Pool
	logger       *slog.Logger

	routing    Routing
	shaper     waveshaper.Type
	drive      float64
	feedback   float64
	outputGain float64
}

func defaultConfig() config {
	return config{
		processor:  core.DefaultProcessorConfig(),
		routing:    RoutingSerial,
		shaper:     waveshaper.None,
		drive:      1,
		outputGain: 1,
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	if cfg.tuning == nil {
		cfg.tuning = quad.EqualTemperament{Rate: cfg.processor.SampleRate}
	}

	return cfg, nil
}

// WithProcessorConfig sets sample rate, block size and oversample factor.
// Process consumes samples at the kernel rate, SampleRate*OversampleFactor.
func WithProcessorConfig(pc core.ProcessorConfig) Option {
	return func(cfg *config) error {
		if pc.SampleRate <= 0 || pc.BlockSize <= 0 || pc.OversampleFactor <= 0 {
			return fmt.Errorf("voicefilter: invalid processor config: %+v", pc)
		}

		cfg.processor = pc

		return nil
	}
}

// WithTuning sets the note-to-frequency mapping. The default is equal
// temperament at the processor sample rate.
func WithTuning(t quad.Tuning) Option {
	return func(cfg *config) error {
		cfg.tuning = t

		return nil
	}
}

// WithIgnoreTuning maps cutoff notes through equal temperament.
func WithIgnoreTuning(ignore bool) Option {
	return func(cfg *config) error {
		cfg.ignoreTuning = ignore

		return nil
	}
}

// WithPool shares p for comb delay lines. Without it each Slot or Chain
// creates its own pool.
func WithPool(p *delay.Pool) Option {
	return func(cfg *config) error {
		if p == nil {
			return fmt.Errorf("voicefilter: nil pool")
		}

		if p.BaseCapacity() < quad.CombMaxDelayExtended {
			return fmt.Errorf("voicefilter: pool capacity %d below %d", p.BaseCapacity(), quad.CombMaxDelayExtended)
		}

		cfg.pool = p

		return nil
	}
}

// WithLogger receives debug events for voice and filter changes.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = l

		return nil
	}
}

// WithRouting selects how a Chain connects its two slots.
func WithRouting(r Routing) Option {
	return func(cfg *config) error {
		if !r.Valid() {
			return fmt.Errorf("voicefilter: invalid routing: %d", r)
		}

		cfg.routing = r

		return nil
	}
}

// WithWaveshaper places shaper t between the two slots of a Chain with
// the given drive in dB.
func WithWaveshaper(t waveshaper.Type, driveDB float64) Option {
	return func(cfg *config) error {
		if !t.Valid() {
			return fmt.Errorf("voicefilter: invalid waveshaper: %d", t)
		}

		if !core.IsFinite(driveDB) || driveDB < minDriveDB || driveDB > maxDriveDB {
			return fmt.Errorf("voicefilter: drive must be in [%g, %g] dB: %g", minDriveDB, maxDriveDB, driveDB)
		}

		cfg.shaper = t
		cfg.drive = core.DBToLinear(driveDB)

		return nil
	}
}

// WithFeedback sets the output-to-input amount for RoutingSerialFeedback,
// in [0, 1].
func WithFeedback(amount float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(amount) || amount < 0 || amount > 1 {
			return fmt.Errorf("voicefilter: feedback must be in [0, 1]: %g", amount)
		}

		cfg.feedback = amount

		return nil
	}
}

// WithOutputGainDB sets the Chain output gain.
func WithOutputGainDB(db float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(db) || db < minOutputDB || db > maxOutputDB {
			return fmt.Errorf("voicefilter: output gain must be in [%g, %g] dB: %g", minOutputDB, maxOutputDB, db)
		}

		cfg.outputGain = core.DBToLinear(db)

		return nil
	}
}

func (cfg config) makerOptions() []quad.Option {
	return []quad.Option{
		quad.WithBlockSize(cfg.processor.BlockSize),
		quad.WithOversampleFactor(cfg.processor.OversampleFactor),
		quad.WithIgnoreTuning(cfg.ignoreTuning),
	}
}

func (cfg *config) ensurePool() error {
	if cfg.pool != nil {
		return nil
	}

	pool, err := delay.NewPool(quad.CombMaxDelayExtended, delay.WithPoolSize(defaultPoolSize))
	if err != nil {
		return fmt.Errorf("voicefilter: %w", err)
	}

	cfg.pool = pool

	return nil
}
