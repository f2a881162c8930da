package waveshaper

import (
	"fmt"

	"github.com/cwbudde/algo-synthfilter/dsp/lanes"
)

// Type selects a waveshaper.
type Type int

const (
	None Type = iota
	Soft
	Hard
	Asym
	Sine
	Digital
	OJDShaper

	numTypes
)

var typeNames = [numTypes]string{
	None:      "none",
	Soft:      "soft",
	Hard:      "hard",
	Asym:      "asymmetric",
	Sine:      "sine",
	Digital:   "digital",
	OJDShaper: "ojd",
}

// String returns the display name of t.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// Valid reports whether t is a declared shaper.
func (t Type) Valid() bool {
	return t >= None && t < numTypes
}

// Types lists every declared shaper in order.
func Types() []Type {
	out := make([]Type, 0, numTypes)
	for t := None; t < numTypes; t++ {
		out = append(out, t)
	}

	return out
}

// ParseType resolves a display name produced by Type.String.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}

	return None, fmt.Errorf("waveshaper: unknown type %q", name)
}

// Kernel shapes four lanes at once. drive is a linear input gain.
type Kernel func(in, drive lanes.Vec) lanes.Vec

// Dispatch returns the kernel for t, or nil for None and unknown types.
func Dispatch(t Type) Kernel {
	switch t {
	case Soft:
		return softKernel
	case Hard:
		return hardKernel
	case Asym:
		InitTables()
		return asymKernel
	case Sine:
		InitTables()
		return sineKernel
	case Digital:
		return digitalKernel
	case OJDShaper:
		return ojdKernel
	default:
		return nil
	}
}

func softKernel(in, drive lanes.Vec) lanes.Vec {
	return in.Mul(drive).Map(Tanh)
}

func hardKernel(in, drive lanes.Vec) lanes.Vec {
	return in.Mul(drive).Clamp(-1, 1)
}

func asymKernel(in, drive lanes.Vec) lanes.Vec {
	return in.Mul(drive).Map(AsymFold)
}

func sineKernel(in, drive lanes.Vec) lanes.Vec {
	return in.Mul(drive).Map(SineFold)
}

func ojdKernel(in, drive lanes.Vec) lanes.Vec {
	return in.Mul(drive).Map(OJD)
}

func digitalKernel(in, drive lanes.Vec) lanes.Vec {
	var out lanes.Vec
	for i := range out {
		out[i] = BitReduce(in[i], drive[i])
	}

	return out
}
