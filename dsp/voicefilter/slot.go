package voicefilter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synthfilter/dsp/delay"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

// Block holds one buffer per lane.
type Block [lanes.Width][]float64

// NewBlock allocates a zeroed block of n samples per lane.
func NewBlock(n int) Block {
	var b Block
	for lane := range b {
		b[lane] = make([]float64, n)
	}

	return b
}

// Len returns the shortest lane length.
func (b Block) Len() int {
	n := len(b[0])
	for _, buf := range b[1:] {
		n = min(n, len(buf))
	}

	return n
}

func (b Block) slice(lo, hi int) Block {
	var out Block
	for lane := range b {
		out[lane] = b[lane][lo:hi]
	}

	return out
}

func (b Block) at(i int) lanes.Vec {
	return lanes.Vec{b[0][i], b[1][i], b[2][i], b[3][i]}
}

func (b Block) set(i int, v lanes.Vec) {
	b[0][i], b[1][i], b[2][i], b[3][i] = v[0], v[1], v[2], v[3]
}

// Params are the per-voice filter controls.
type Params struct {
	// Cutoff in semitones relative to A440.
	Cutoff float64
	// Resonance in [0, 1].
	Resonance float64
}

// Slot is one filter stage for up to four voices.
type Slot struct {
	cfg    config
	logger *slog.Logger

	rf     *quad.RegisterFile
	makers [lanes.Width]*quad.CoefficientMaker
	params [lanes.Width]Params

	typ    quad.Type
	sub    quad.Subtype
	kernel quad.Kernel
}

// NewSlot returns a slot with every lane stopped and no filter selected.
func NewSlot(opts ...Option) (*Slot, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	if err := cfg.ensurePool(); err != nil {
		return nil, err
	}

	return newSlot(cfg)
}

func newSlot(cfg config) (*Slot, error) {
	s := &Slot{
		cfg:    cfg,
		logger: cfg.logger,
		rf:     quad.NewRegisterFile(),
	}

	for lane := range s.makers {
		m, err := quad.NewCoefficientMaker(cfg.makerOptions()...)
		if err != nil {
			return nil, fmt.Errorf("voicefilter: %w", err)
		}

		s.makers[lane] = m
	}

	s.rf.Active = lanes.Mask{}
	quad.InitTables()

	return s, nil
}

// SetFilter selects the filter for all lanes. A change clears filter
// state. TypeNone passes active lanes through unchanged; an unknown pair
// makes the slot silent.
func (s *Slot) SetFilter(t quad.Type, sub quad.Subtype) {
	if t == s.typ && sub == s.sub {
		return
	}

	s.typ, s.sub = t, sub
	s.kernel = quad.Dispatch(t, sub)
	s.rf.Reset()

	for _, m := range s.makers {
		m.Reset()
	}

	s.logger.Debug("filter changed", "type", t.String(), "subtype", t.SubtypeName(sub), "bypass", t == quad.TypeNone, "silent", t != quad.TypeNone && s.kernel == nil)
}

// Filter returns the selected filter.
func (s *Slot) Filter() (quad.Type, quad.Subtype) {
	return s.typ, s.sub
}

// SetParams updates the controls of lane; they take effect at the next
// block.
func (s *Slot) SetParams(lane int, p Params) {
	if lane < 0 || lane >= lanes.Width {
		return
	}

	s.params[lane] = p
}

// Params returns the controls of lane.
func (s *Slot) Params(lane int) Params {
	if lane < 0 || lane >= lanes.Width {
		return Params{}
	}

	return s.params[lane]
}

// StartVoice activates lane with fresh state, checking out a delay line
// when the lane has none. Coefficients start at p without a ramp.
func (s *Slot) StartVoice(lane int, p Params) error {
	if lane < 0 || lane >= lanes.Width {
		return fmt.Errorf("voicefilter: lane %d out of range", lane)
	}

	if s.rf.DelayBuffers[lane] == nil {
		ring, err := s.cfg.pool.Get()
		if err != nil {
			if errors.Is(err, delay.ErrPoolExhausted) {
				s.logger.Debug("delay pool exhausted", "lane", lane, "in_use", s.cfg.pool.InUse())
			}

			return fmt.Errorf("voicefilter: start lane %d: %w", lane, err)
		}

		s.rf.DelayBuffers[lane] = ring
	}

	s.rf.ResetLane(lane)
	s.params[lane] = p

	m := s.makers[lane]
	m.Reset()
	m.MakeCoefficients(p.Cutoff, p.Resonance, s.typ, s.sub, s.cfg.tuning)
	m.Instantize()
	s.rf.LoadLane(lane, m)
	s.rf.SetActive(lane, true)

	s.logger.Debug("voice started", "lane", lane, "cutoff", p.Cutoff, "resonance", p.Resonance)

	return nil
}

// StopVoice deactivates lane and returns its delay line to the pool.
func (s *Slot) StopVoice(lane int) {
	if lane < 0 || lane >= lanes.Width || !s.rf.Active.Lane(lane) {
		return
	}

	s.rf.SetActive(lane, false)
	s.rf.ResetLane(lane)
	s.cfg.pool.Put(s.rf.DelayBuffers[lane])
	s.rf.DelayBuffers[lane] = nil

	s.logger.Debug("voice stopped", "lane", lane)
}

// Active reports whether lane is playing.
func (s *Slot) Active(lane int) bool {
	return lane >= 0 && lane < lanes.Width && s.rf.Active.Lane(lane)
}

// Close stops every lane.
func (s *Slot) Close() {
	for lane := range lanes.Width {
		s.StopVoice(lane)
	}
}

// Process filters in into out, one coefficient update per block of the
// configured size. Inactive lanes produce zeros. in and out may alias.
func (s *Slot) Process(in, out Block) {
	n := min(in.Len(), out.Len())
	bs := s.cfg.processor.BlockSize

	for lo := 0; lo < n; lo += bs {
		hi := min(lo+bs, n)
		s.processChunk(in.slice(lo, hi), out.slice(lo, hi))
	}
}

func (s *Slot) processChunk(in, out Block) {
	s.beginBlock()

	for i := range in.Len() {
		out.set(i, s.step(in.at(i)))
	}

	s.endBlock()
}

func (s *Slot) beginBlock() {
	for lane := range lanes.Width {
		if !s.rf.Active.Lane(lane) {
			continue
		}

		p := s.params[lane]
		s.makers[lane].MakeCoefficients(p.Cutoff, p.Resonance, s.typ, s.sub, s.cfg.tuning)
		s.rf.LoadLane(lane, s.makers[lane])
	}
}

func (s *Slot) step(x lanes.Vec) lanes.Vec {
	var silence lanes.Vec

	active := s.rf.Active

	switch {
	case s.typ == quad.TypeNone:
		return active.Select(x, silence)
	case s.kernel == nil:
		return silence
	}

	return active.Select(s.kernel(s.rf, active.Select(x, silence)), silence)
}

func (s *Slot) endBlock() {
	s.rf.FlushDenormals()
}

// Mixdown adds the active lanes of out into dst.
func (s *Slot) Mixdown(dst []float64, out Block) {
	mixdown(dst, out, s.rf.Active)
}

func mixdown(dst []float64, out Block, active lanes.Mask) {
	for lane := range lanes.Width {
		if !active.Lane(lane) || len(out[lane]) < len(dst) {
			continue
		}

		vecmath.AddBlockInPlace(dst, out[lane][:len(dst)])
	}
}

// LogValue reports the slot state for structured logging.
func (s *Slot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", s.typ.String()),
		slog.Int("subtype", int(s.sub)),
		slog.Any("active", [lanes.Width]bool{s.Active(0), s.Active(1), s.Active(2), s.Active(3)}),
	)
}

var _ slog.LogValuer = (*Slot)(nil)
