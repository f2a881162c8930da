// Command qfrender filters an audio file through a quad filter chain and
// writes the result as WAV.
//
// Each input channel (up to four) drives one voice lane. The source is
// upsampled to the kernel rate, filtered, and downsampled again.
//
// Usage:
//
//	qfrender [flags] -in source.{wav,mp3} -out result.wav
//
// Examples:
//
//	qfrender -in loop.wav -out lp.wav -a lp24db:1 -cutoff 24 -reso 0.8
//	qfrender -in drums.mp3 -out comb.wav -a comb+:1 -b hp12db -script sweep.lua
//	qfrender -in pad.wav -out fb.wav -routing serial-feedback -feedback 0.4 -shaper soft
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dh1tw/gosamplerate"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/voicefilter"
	"github.com/cwbudde/algo-synthfilter/internal/audiofile"
	"github.com/cwbudde/algo-synthfilter/internal/automation"
	"github.com/cwbudde/algo-synthfilter/internal/cli"
)

var converters = map[string]int{
	"best":    gosamplerate.SRC_SINC_BEST_QUALITY,
	"medium":  gosamplerate.SRC_SINC_MEDIUM_QUALITY,
	"fastest": gosamplerate.SRC_SINC_FASTEST,
	"linear":  gosamplerate.SRC_LINEAR,
}

type options struct {
	in, out   string
	script    string
	bits      int
	dither    bool
	converter string
	tail      float64
	logLevel  string
	chain     cli.ChainFlags
}

func main() {
	var opts options

	flag.StringVar(&opts.in, "in", "", "source file (.wav or .mp3)")
	flag.StringVar(&opts.out, "out", "", "destination .wav file")
	flag.StringVar(&opts.script, "script", "", "Lua file defining automate(t)")
	flag.IntVar(&opts.bits, "bits", 24, "output bit depth (16, 24 or 32)")
	flag.BoolVar(&opts.dither, "dither", true, "add TPDF dither before quantizing")
	flag.StringVar(&opts.converter, "converter", "medium", "sample rate converter: best, medium, fastest or linear")
	flag.Float64Var(&opts.tail, "tail", 1, "seconds of silence appended for filter tails")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	opts.chain.Register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qfrender [flags] -in source -out result.wav\n\n")
		fmt.Fprintf(os.Stderr, "Filters each channel of source through a quad filter chain.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nFilter keys: %v\n", cli.FilterKeys())
	}
	flag.Parse()

	logger, err := cli.NewLogger(os.Stderr, opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if opts.in == "" || opts.out == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := opts.chain.Validate(); err != nil {
		logger.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	if err := run(opts, logger); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	conv, ok := converters[opts.converter]
	if !ok {
		return fmt.Errorf("unknown converter %q", opts.converter)
	}

	src, err := audiofile.Read(opts.in)
	if err != nil {
		return err
	}

	if n := len(src.Channels); n == 0 || n > lanes.Width {
		return fmt.Errorf("%s: %d channels, want 1 to %d", opts.in, n, lanes.Width)
	}

	logger.Info("source loaded", "path", opts.in, "rate", src.SampleRate, "channels", len(src.Channels), "frames", src.Frames())

	chain, err := opts.chain.Build(float64(src.SampleRate), logger)
	if err != nil {
		return err
	}
	defer chain.Close()

	var script *automation.Script
	if opts.script != "" {
		script, err = automation.Load(opts.script)
		if err != nil {
			return err
		}
		defer script.Close()
	}

	factor := float64(opts.chain.Oversample)
	tail := int(opts.tail * float64(src.SampleRate))

	ups := make([][]float64, len(src.Channels))
	n := -1

	for ch, samples := range src.Channels {
		padded := append(samples[:src.Frames():src.Frames()], make([]float64, tail)...)

		ups[ch], err = convert(padded, factor, conv)
		if err != nil {
			return fmt.Errorf("upsample: %w", err)
		}

		if n < 0 || len(ups[ch]) < n {
			n = len(ups[ch])
		}
	}

	in := voicefilter.NewBlock(n)
	for ch, up := range ups {
		copy(in[ch], up)
	}

	kernelRate := float64(src.SampleRate) * factor
	start := time.Now()

	out, peaks, err := render(chain, in, len(src.Channels), kernelRate, opts.chain, script)
	if err != nil {
		return err
	}

	dst := &audiofile.Audio{SampleRate: src.SampleRate, Channels: make([][]float64, len(src.Channels))}
	for ch := range dst.Channels {
		down, err := convert(out[ch], 1/factor, conv)
		if err != nil {
			return fmt.Errorf("downsample: %w", err)
		}

		dst.Channels[ch] = down
	}

	logger.Info("rendered", "frames", dst.Frames(), "elapsed", time.Since(start), "peaks", peaks)

	return audiofile.WriteFile(opts.out, dst, audiofile.WriteOptions{
		BitDepth: opts.bits,
		Dither:   opts.dither,
		Seed:     1,
	})
}

// render feeds in through chain one coefficient block at a time, letting
// the script move the controls between blocks.
func render(chain *voicefilter.Chain, in voicefilter.Block, voices int, kernelRate float64, cf cli.ChainFlags, script *automation.Script) (voicefilter.Block, lanes.Vec, error) {
	n := in.Len()
	out := voicefilter.NewBlock(n)
	peaks := lanes.Vec{}

	pa, pb := cf.Params()
	for lane := range voices {
		if err := chain.StartVoice(lane, pa, pb); err != nil {
			return out, peaks, err
		}
	}

	defaults := automation.Controls{CutoffA: pa.Cutoff, ResoA: pa.Resonance, CutoffB: pb.Cutoff, ResoB: pb.Resonance}

	for lo := 0; lo < n; lo += cf.BlockSize {
		hi := min(lo+cf.BlockSize, n)

		if script != nil {
			c, err := script.At(float64(lo)/kernelRate, defaults)
			if err != nil {
				return out, peaks, err
			}

			for lane := range voices {
				chain.SetParams(lane,
					voicefilter.Params{Cutoff: c.CutoffA, Resonance: c.ResoA},
					voicefilter.Params{Cutoff: c.CutoffB, Resonance: c.ResoB})
			}
		}

		chain.Process(sliceBlock(in, lo, hi), sliceBlock(out, lo, hi))
		peaks = peaks.Max(chain.Peaks())
	}

	return out, peaks, nil
}

func sliceBlock(b voicefilter.Block, lo, hi int) voicefilter.Block {
	var out voicefilter.Block
	for lane := range b {
		out[lane] = b[lane][lo:hi]
	}

	return out
}

func convert(x []float64, ratio float64, converter int) ([]float64, error) {
	if ratio == 1 {
		return x, nil
	}

	buf := make([]float32, len(x))
	for i, v := range x {
		buf[i] = float32(v)
	}

	res, err := gosamplerate.Simple(buf, ratio, 1, converter)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(res))
	for i, v := range res {
		out[i] = float64(v)
	}

	return out, nil
}
