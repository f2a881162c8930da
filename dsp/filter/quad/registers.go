package quad

import (
	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/delay"
	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

const (
	// NumCoefficients is the number of ramped coefficient slots per lane.
	NumCoefficients = 8
	// NumRegisters is the number of state slots per lane.
	NumRegisters = 16
)

// RegisterFile holds the coefficients, state and delay-line references
// of four filter lanes. Kernels read and write it in place.
type RegisterFile struct {
	Coefficients [NumCoefficients]lanes.Vec
	Deltas       [NumCoefficients]lanes.Vec
	Registers    [NumRegisters]lanes.Vec

	// DelayBuffers are owned by the caller. Only comb kernels touch them,
	// and only for lanes set in Active.
	DelayBuffers   [lanes.Width]*delay.Ring
	Active         lanes.Mask
	WritePositions [lanes.Width]int
}

// NewRegisterFile returns a zeroed register file with every lane active.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{Active: lanes.AllLanes}
}

// Reset zeroes coefficients, deltas, registers and write cursors. Delay
// buffer references and the active mask are kept; referenced buffers are
// cleared.
func (rf *RegisterFile) Reset() {
	rf.Coefficients = [NumCoefficients]lanes.Vec{}
	rf.Deltas = [NumCoefficients]lanes.Vec{}
	rf.Registers = [NumRegisters]lanes.Vec{}
	rf.WritePositions = [lanes.Width]int{}

	for _, ring := range rf.DelayBuffers {
		if ring != nil {
			ring.Reset()
		}
	}
}

// ResetLane zeroes every slot of lane i, its write cursor and its delay
// buffer, leaving the other lanes untouched.
func (rf *RegisterFile) ResetLane(i int) {
	if i < 0 || i >= lanes.Width {
		return
	}

	for k := range rf.Coefficients {
		rf.Coefficients[k][i] = 0
		rf.Deltas[k][i] = 0
	}

	for k := range rf.Registers {
		rf.Registers[k][i] = 0
	}

	rf.WritePositions[i] = 0
	if rf.DelayBuffers[i] != nil {
		rf.DelayBuffers[i].Reset()
	}
}

// SetActive marks lane i as active or inactive.
func (rf *RegisterFile) SetActive(i int, on bool) {
	if i < 0 || i >= lanes.Width {
		return
	}

	rf.Active = rf.Active.With(i, on)
}

// LoadLane copies the ramp start values and per-sample deltas of m into
// lane i.
func (rf *RegisterFile) LoadLane(i int, m *CoefficientMaker) {
	if i < 0 || i >= lanes.Width || m == nil {
		return
	}

	for k := range NumCoefficients {
		rf.Coefficients[k][i] = m.start[k]
		rf.Deltas[k][i] = m.delta[k]
	}
}

// FlushDenormals zeroes register values too small to matter. Call it once
// per block.
func (rf *RegisterFile) FlushDenormals() {
	lanes.FlushDenormals(rf.Registers[:], core.DenormalThreshold)
}

func (rf *RegisterFile) advance() {
	lanes.Advance(rf.Coefficients[:], rf.Deltas[:])
}
