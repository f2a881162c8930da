package cli

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/voicefilter"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

// ChainFlags are the filter chain settings shared by the commands.
type ChainFlags struct {
	FilterA, FilterB string
	CutoffA, CutoffB float64
	ResoA, ResoB     float64

	Routing  string
	Shaper   string
	DriveDB  float64
	Feedback float64
	GainDB   float64

	BlockSize  int
	Oversample int
}

// Register adds the chain flags to fs.
func (c *ChainFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.FilterA, "a", "lp24db:0", "filter A as type[:subtype][:ext]")
	fs.StringVar(&c.FilterB, "b", "off", "filter B as type[:subtype][:ext]")
	fs.Float64Var(&c.CutoffA, "cutoff", 12, "filter A cutoff in semitones from A440")
	fs.Float64Var(&c.CutoffB, "cutoff-b", 12, "filter B cutoff in semitones from A440")
	fs.Float64Var(&c.ResoA, "reso", 0.5, "filter A resonance in [0, 1]")
	fs.Float64Var(&c.ResoB, "reso-b", 0.5, "filter B resonance in [0, 1]")
	fs.StringVar(&c.Routing, "routing", "serial", "serial, serial-feedback or parallel")
	fs.StringVar(&c.Shaper, "shaper", "none", "waveshaper between the filters")
	fs.Float64Var(&c.DriveDB, "drive", 0, "waveshaper drive in dB")
	fs.Float64Var(&c.Feedback, "feedback", 0, "serial-feedback amount in [0, 1]")
	fs.Float64Var(&c.GainDB, "gain", 0, "output gain in dB")
	fs.IntVar(&c.BlockSize, "block", 64, "coefficient block size in kernel samples")
	fs.IntVar(&c.Oversample, "oversample", 2, "kernel oversampling factor")
}

// Validate rejects settings that no chain can run with.
func (c *ChainFlags) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("-block must be > 0: %d", c.BlockSize)
	}

	if c.Oversample <= 0 {
		return fmt.Errorf("-oversample must be > 0: %d", c.Oversample)
	}

	return nil
}

// Params returns the per-slot controls from the flags.
func (c *ChainFlags) Params() (voicefilter.Params, voicefilter.Params) {
	return voicefilter.Params{Cutoff: c.CutoffA, Resonance: c.ResoA},
		voicefilter.Params{Cutoff: c.CutoffB, Resonance: c.ResoB}
}

// Processor returns the processor config for a host rate.
func (c *ChainFlags) Processor(sampleRate float64) core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(sampleRate),
		core.WithBlockSize(c.BlockSize),
		core.WithOversampleFactor(c.Oversample),
	)
}

// Build returns a chain with both filters selected.
func (c *ChainFlags) Build(sampleRate float64, logger *slog.Logger) (*voicefilter.Chain, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	routing, err := voicefilter.ParseRouting(c.Routing)
	if err != nil {
		return nil, err
	}

	shaper, err := waveshaper.ParseType(c.Shaper)
	if err != nil {
		return nil, err
	}

	ta, sa, err := ParseFilter(c.FilterA)
	if err != nil {
		return nil, err
	}

	tb, sb, err := ParseFilter(c.FilterB)
	if err != nil {
		return nil, err
	}

	chain, err := voicefilter.NewChain(
		voicefilter.WithProcessorConfig(c.Processor(sampleRate)),
		voicefilter.WithRouting(routing),
		voicefilter.WithWaveshaper(shaper, c.DriveDB),
		voicefilter.WithFeedback(c.Feedback),
		voicefilter.WithOutputGainDB(c.GainDB),
		voicefilter.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("build chain: %w", err)
	}

	chain.SetFilters(ta, sa, tb, sb)

	return chain, nil
}

// FilterKeys lists the accepted filter type keys.
func FilterKeys() []string {
	keys := make([]string, 0, len(quad.Types()))
	for _, t := range quad.Types() {
		keys = append(keys, Slug(t.String()))
	}

	return keys
}
