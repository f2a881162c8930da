package core

// ProcessorConfig defines the block layout shared by the filter engine.
//
// SampleRate is the host rate. Filter kernels run OversampleFactor times
// faster; BlockSize counts samples at the kernel rate and is the length of
// one coefficient ramp.
type ProcessorConfig struct {
	SampleRate       float64
	BlockSize        int
	OversampleFactor int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the engine defaults: 48 kHz host rate,
// 2x oversampled kernels, and 64-sample coefficient ramps.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:       48000,
		BlockSize:        64,
		OversampleFactor: 2,
	}
}

// KernelRate returns the rate at which filter kernels are clocked.
func (c ProcessorConfig) KernelRate() float64 {
	return c.SampleRate * float64(c.OversampleFactor)
}

// WithSampleRate sets the host sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the coefficient ramp length in kernel-rate samples.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithOversampleFactor sets the kernel oversampling factor.
func WithOversampleFactor(factor int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if factor > 0 {
			cfg.OversampleFactor = factor
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
