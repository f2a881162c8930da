// Command qfaudition plays a sawtooth through a quad filter chain in real
// time.
//
// Two voices, slightly detuned, feed the left and right channels. The
// cutoff of filter A can be swept by a sine LFO.
//
// Examples:
//
//	qfaudition -a lpladder:3 -cutoff 12 -reso 0.9 -lfo-depth 24
//	qfaudition -a lpvintageladder:3 -shaper ojd -drive 12 -duration 20s
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/voicefilter"
	"github.com/cwbudde/algo-synthfilter/internal/cli"
)

const (
	channels       = 2
	bytesPerSample = 4
)

type options struct {
	rate     int
	note     float64
	detune   float64
	level    float64
	lfoRate  float64
	lfoDepth float64
	duration time.Duration
	logLevel string
	chain    cli.ChainFlags
}

func main() {
	var opts options

	flag.IntVar(&opts.rate, "rate", 48000, "output sample rate in Hz")
	flag.Float64Var(&opts.note, "note", -24, "oscillator pitch in semitones from A440")
	flag.Float64Var(&opts.detune, "detune", 0.1, "right voice detune in semitones")
	flag.Float64Var(&opts.level, "level", 0.25, "oscillator level")
	flag.Float64Var(&opts.lfoRate, "lfo-rate", 0.25, "cutoff LFO rate in Hz")
	flag.Float64Var(&opts.lfoDepth, "lfo-depth", 0, "cutoff LFO depth in semitones")
	flag.DurationVar(&opts.duration, "duration", 10*time.Second, "playback time")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	opts.chain.Register(flag.CommandLine)
	flag.Parse()

	logger, err := cli.NewLogger(os.Stderr, opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts, logger); err != nil {
		logger.Error("audition failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	chain, err := opts.chain.Build(float64(opts.rate), logger)
	if err != nil {
		return err
	}
	defer chain.Close()

	host, err := voicefilter.NewHost(chain)
	if err != nil {
		return err
	}

	src, err := newSource(host, opts)
	if err != nil {
		return err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.rate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready

	player := ctx.NewPlayer(src)
	player.Play()

	logger.Info("playing", "duration", opts.duration, "latency", host.Latency())
	time.Sleep(opts.duration)

	return player.Close()
}

// source renders interleaved float32 frames on demand for the player.
type source struct {
	host   *voicefilter.Host
	opts   options
	in     voicefilter.Block
	out    voicefilter.Block
	phase  [channels]float64
	inc    [channels]float64
	frames int
	pos    int
	filled int
}

func newSource(host *voicefilter.Host, opts options) (*source, error) {
	const block = 256

	s := &source{
		host: host,
		opts: opts,
		in:   voicefilter.NewBlock(block),
		out:  voicefilter.NewBlock(block),
	}

	tuning := quad.EqualTemperament{Rate: float64(opts.rate)}
	pa, pb := opts.chain.Params()

	for ch := range channels {
		note := opts.note + float64(ch)*opts.detune
		s.inc[ch] = tuning.NoteToPitch(note) * quad.ReferenceFrequency / float64(opts.rate)

		if err := host.StartVoice(ch, pa, pb); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *source) Read(p []byte) (int, error) {
	n := 0

	for n+channels*bytesPerSample <= len(p) {
		if s.pos == s.filled {
			s.render()
		}

		for ch := range channels {
			v := float32(s.out[ch][s.pos])
			binary.LittleEndian.PutUint32(p[n:], math.Float32bits(v))
			n += bytesPerSample
		}

		s.pos++
	}

	return n, nil
}

func (s *source) render() {
	n := len(s.in[0])
	t := float64(s.frames) / float64(s.opts.rate)
	pa, pb := s.opts.chain.Params()
	pa.Cutoff += s.opts.lfoDepth * math.Sin(2*math.Pi*s.opts.lfoRate*t)

	chain := s.host.Chain()

	for ch := range channels {
		chain.SetParams(ch, pa, pb)

		for i := range n {
			s.in[ch][i] = s.opts.level * saw(&s.phase[ch], s.inc[ch])
		}
	}

	s.host.Process(s.in, s.out)
	s.frames += n
	s.pos = 0
	s.filled = n
}

// saw returns one PolyBLEP sawtooth sample and advances phase.
func saw(phase *float64, inc float64) float64 {
	p := *phase
	y := 2*p - 1

	switch {
	case p < inc:
		t := p / inc
		y -= t + t - t*t - 1
	case p > 1-inc:
		t := (p - 1) / inc
		y -= t*t + t + t + 1
	}

	p += inc
	if p >= 1 {
		p--
	}

	*phase = p

	return y
}
