package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/interp"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
	"github.com/cwbudde/algo-synthfilter/dsp/waveshaper"
)

// combKernel reads each active lane's ring at the fractional delay
// through the windowed-sinc table and writes the soft-clipped feedback
// sum back. Inactive lanes and lanes without a ring output zero.
func combKernel(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	c := &rf.Coefficients
	table := interp.Sinc()

	var out lanes.Vec

	for i := range lanes.Width {
		ring := rf.DelayBuffers[i]
		if !rf.Active.Lane(i) || ring == nil || ring.Len() < 2*combTaps+1 {
			continue
		}

		d := core.Clamp(c[combDelay][i], combTaps, float64(ring.Len()-combTaps))
		wp := rf.WritePositions[i]

		delayed := ring.ReadSinc(wp, d, table)
		ring.Set(wp, waveshaper.SoftClip(in[i]+c[combFeedback][i]*delayed))
		rf.WritePositions[i] = (wp + 1) & ring.Mask()

		out[i] = c[combDry][i]*in[i] + c[combWet][i]*delayed
	}

	rf.advance()

	return out
}

// sampleHoldKernel accumulates the rate in R0 and, each time it crosses
// zero, resamples the input with soft-clipped feedback into R1.
func sampleHoldKernel(rf *RegisterFile, in lanes.Vec) lanes.Vec {
	c := &rf.Coefficients
	r := &rf.Registers

	r[0] = r[0].Add(c[shRate])
	fire := lanes.Greater(r[0], lanes.Vec{})

	sampled := in.Sub(c[shFeedback].Mul(r[1])).Map(waveshaper.SoftClip)
	r[1] = fire.Select(sampled, r[1])
	r[0] = fire.Select(r[0].Sub(lanes.Splat(1)), r[0])

	out := r[1]
	rf.advance()

	return out
}
