package voicefilter

import (
	"log/slog"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

// Chain runs filter A, a waveshaper and filter B for four voices.
type Chain struct {
	cfg    config
	logger *slog.Logger

	a, b   *Slot
	shaper waveshaper.Kernel
	drive  lanes.Vec

	last  lanes.Vec
	peaks lanes.Vec

	scratchA, scratchB Block
}

// NewChain returns a chain with both slots bypassed and every lane
// stopped.
func NewChain(opts ...Option) (*Chain, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	if err := cfg.ensurePool(); err != nil {
		return nil, err
	}

	a, err := newSlot(cfg)
	if err != nil {
		return nil, err
	}

	b, err := newSlot(cfg)
	if err != nil {
		return nil, err
	}

	c := &Chain{
		cfg:      cfg,
		logger:   cfg.logger,
		a:        a,
		b:        b,
		shaper:   waveshaper.Dispatch(cfg.shaper),
		drive:    lanes.Splat(cfg.drive),
		scratchA: NewBlock(cfg.processor.BlockSize),
		scratchB: NewBlock(cfg.processor.BlockSize),
	}

	c.logger.Debug("chain created", "routing", cfg.routing.String(), "waveshaper", cfg.shaper.String(), "drive", cfg.drive)

	return c, nil
}

// A returns the first filter slot.
func (c *Chain) A() *Slot {
	return c.a
}

// B returns the second filter slot.
func (c *Chain) B() *Slot {
	return c.b
}

// Routing returns the configured routing.
func (c *Chain) Routing() Routing {
	return c.cfg.routing
}

// SetFilters selects the filters of both slots.
func (c *Chain) SetFilters(ta quad.Type, sa quad.Subtype, tb quad.Type, sb quad.Subtype) {
	c.a.SetFilter(ta, sa)
	c.b.SetFilter(tb, sb)
}

// StartVoice starts lane in both slots. On failure neither slot plays the
// lane.
func (c *Chain) StartVoice(lane int, pa, pb Params) error {
	if err := c.a.StartVoice(lane, pa); err != nil {
		return err
	}

	if err := c.b.StartVoice(lane, pb); err != nil {
		c.a.StopVoice(lane)

		return err
	}

	if lane >= 0 && lane < lanes.Width {
		c.last[lane] = 0
	}

	return nil
}

// StopVoice stops lane in both slots.
func (c *Chain) StopVoice(lane int) {
	c.a.StopVoice(lane)
	c.b.StopVoice(lane)
}

// SetParams updates the controls of lane in both slots.
func (c *Chain) SetParams(lane int, pa, pb Params) {
	c.a.SetParams(lane, pa)
	c.b.SetParams(lane, pb)
}

// Close stops every lane and returns all delay lines.
func (c *Chain) Close() {
	c.a.Close()
	c.b.Close()
}

// Peaks returns the absolute peak of each lane in the last processed
// block, after output gain.
func (c *Chain) Peaks() lanes.Vec {
	return c.peaks
}

// Mixdown adds the active lanes of out into dst.
func (c *Chain) Mixdown(dst []float64, out Block) {
	mixdown(dst, out, c.a.rf.Active)
}

// Process runs in through the chain into out. in and out may alias.
func (c *Chain) Process(in, out Block) {
	n := min(in.Len(), out.Len())
	bs := c.cfg.processor.BlockSize

	c.peaks = lanes.Vec{}

	for lo := 0; lo < n; lo += bs {
		hi := min(lo+bs, n)
		c.processChunk(in.slice(lo, hi), out.slice(lo, hi))
	}
}

func (c *Chain) processChunk(in, out Block) {
	n := in.Len()
	bufA := c.scratchA.slice(0, n)
	bufB := c.scratchB.slice(0, n)

	switch c.cfg.routing {
	case RoutingSerialFeedback:
		c.a.beginBlock()
		c.b.beginBlock()

		fb := lanes.Splat(c.cfg.feedback)

		for i := range n {
			x := fb.MulAdd(c.last.Map(waveshaper.Tanh), in.at(i))
			y := c.b.step(c.shape(c.a.step(x)))
			c.last = y
			out.set(i, y)
		}

		c.a.endBlock()
		c.b.endBlock()
	case RoutingParallel:
		c.a.processChunk(in, bufA)
		c.b.processChunk(in, bufB)

		for lane := range lanes.Width {
			vecmath.AddMulBlock(out[lane], bufA[lane], bufB[lane], 0.5)
		}

		c.shapeBlock(out)
	default:
		c.a.processChunk(in, bufA)
		c.shapeBlock(bufA)
		c.b.processChunk(bufA, out)
	}

	for lane := range lanes.Width {
		if c.cfg.outputGain != 1 {
			vecmath.ScaleBlockInPlace(out[lane], c.cfg.outputGain)
		}

		c.peaks[lane] = max(c.peaks[lane], vecmath.MaxAbs(out[lane]))
	}
}

func (c *Chain) shape(x lanes.Vec) lanes.Vec {
	if c.shaper == nil {
		return x
	}

	return c.shaper(x, c.drive)
}

func (c *Chain) shapeBlock(b Block) {
	if c.shaper == nil {
		return
	}

	for i := range b.Len() {
		b.set(i, c.shaper(b.at(i), c.drive))
	}
}
