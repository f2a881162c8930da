package voicefilter

import (
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/oversample"
)

// Host runs a Chain at the host sample rate, interpolating into the
// kernel rate and decimating the result.
type Host struct {
	chain  *Chain
	ovs    *oversample.Oversampler
	chunk  int
	up, dn Block
	peaks  lanes.Vec
}

// NewHost wraps c with an oversampler matching its oversample factor.
func NewHost(c *Chain, opts ...oversample.Option) (*Host, error) {
	if c == nil {
		return nil, fmt.Errorf("voicefilter: nil chain")
	}

	factor := c.cfg.processor.OversampleFactor

	ovs, err := oversample.New(factor, opts...)
	if err != nil {
		return nil, fmt.Errorf("voicefilter: %w", err)
	}

	chunk := max(1, c.cfg.processor.BlockSize/factor)

	return &Host{
		chain: c,
		ovs:   ovs,
		chunk: chunk,
		up:    NewBlock(chunk * factor),
		dn:    NewBlock(chunk * factor),
	}, nil
}

// Chain returns the wrapped chain.
func (h *Host) Chain() *Chain {
	return h.chain
}

// Latency returns the oversampling delay in host samples.
func (h *Host) Latency() float64 {
	return h.ovs.Latency()
}

// StartVoice starts lane in the chain and clears its oversampler history.
func (h *Host) StartVoice(lane int, pa, pb Params) error {
	if err := h.chain.StartVoice(lane, pa, pb); err != nil {
		return err
	}

	h.ovs.ResetLane(lane)

	return nil
}

// Peaks returns the kernel-rate peak of each lane over the last Process
// call.
func (h *Host) Peaks() lanes.Vec {
	return h.peaks
}

// Process filters host-rate in into out. in and out may alias.
func (h *Host) Process(in, out Block) {
	n := min(in.Len(), out.Len())
	factor := h.ovs.Factor()

	h.peaks = lanes.Vec{}

	for lo := 0; lo < n; lo += h.chunk {
		hi := min(lo+h.chunk, n)
		m := (hi - lo) * factor

		up := h.up.slice(0, m)
		dn := h.dn.slice(0, m)

		for lane := range lanes.Width {
			h.ovs.Up(up[lane], in[lane][lo:hi], lane)
		}

		h.chain.Process(up, dn)
		h.peaks = h.peaks.Max(h.chain.Peaks())

		for lane := range lanes.Width {
			h.ovs.Down(out[lane][lo:hi], dn[lane], lane)
		}
	}
}
