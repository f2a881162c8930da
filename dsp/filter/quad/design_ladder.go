package quad

import (
	"math"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/design"
)

// One-pole ladder layout.
const (
	ladInGain = iota
	ladG
	ladFeedback
)

// Runge-Kutta ladder layout.
const (
	rkCutoff = iota
	rkResonance
	rkSaturation
	rkSaturationInv
	rkGainComp
)

// Huovilainen ladder layout.
const (
	huoTune = iota
	huoResQuad
	huoThermal
	huoGainComp
)

// Diode ladder layout.
const (
	diodeG = iota
	diodeK
)

// K35 layout.
const (
	k35G = iota
	k35BetaA
	k35BetaB
	k35K
	k35Alpha0
	k35Saturation
)

const (
	ladderMaxRatio    = 0.187
	ladderMaxFeedback = 2.15

	rkMaxRatio      = 0.35
	rkMaxResonance  = 3.9
	rkSaturationAmt = 3.0
	rkCompensation  = 0.5

	// huovilainenVT is the thermal voltage of the transistor model.
	huovilainenVT            = 0.312
	huovilainenMaxResonance  = 0.99
	huovilainenCompensation  = 0.5
	huovilainenMaxCutoffNorm = 0.45

	diodeMaxK = 16.0

	k35MinK   = 0.01
	k35RangeK = 1.99
)

func designLadder(in designInput) coeffs {
	g := design.ImpulseInvariantGain(in.freq, in.kernelRate, ladderMaxRatio)
	q := ladderMaxFeedback * in.reso

	if g > 0 {
		q = math.Min(q, 0.5/(g*g))
	}

	var c coeffs
	c[ladInGain] = 1 + q
	c[ladG] = g
	c[ladFeedback] = q

	return c
}

func designVintageLadder(in designInput, s Subtype) coeffs {
	switch s {
	case SubtypeHuovilainen, SubtypeHuovilainenCompensated:
		return designHuovilainen(in, s == SubtypeHuovilainenCompensated)
	default:
		return designRungeKutta(in, s == SubtypeRungeKuttaCompensated)
	}
}

func designRungeKutta(in designInput, compensated bool) coeffs {
	f := math.Min(in.freq, rkMaxRatio*in.kernelRate)

	var c coeffs
	c[rkCutoff] = 2 * math.Pi * f / in.kernelRate
	c[rkResonance] = rkMaxResonance * in.reso
	c[rkSaturation] = rkSaturationAmt
	c[rkSaturationInv] = 1 / rkSaturationAmt

	if compensated {
		c[rkGainComp] = rkCompensation
	}

	return c
}

func designHuovilainen(in designInput, compensated bool) coeffs {
	fc := math.Min(in.freq/in.kernelRate, huovilainenMaxCutoffNorm)
	fc2 := fc * fc
	fc3 := fc2 * fc

	fcr := 1.8730*fc3 + 0.4955*fc2 - 0.6490*fc + 0.9988
	acr := -3.9364*fc2 + 1.8409*fc + 0.9968

	thermal := 1 / (2 * huovilainenVT)
	// Two iterations per sample halve the step.
	tune := (1 - math.Exp(-2*math.Pi*(fc*0.5)*fcr)) / thermal
	resQuad := 4 * math.Min(in.reso, huovilainenMaxResonance) * acr

	var c coeffs
	c[huoTune] = tune
	c[huoResQuad] = resQuad
	c[huoThermal] = thermal
	c[huoGainComp] = 1

	if compensated {
		c[huoGainComp] = 1 + huovilainenCompensation*resQuad
	}

	return c
}

func designDiode(in designInput) coeffs {
	var c coeffs
	c[diodeG] = in.prewarped()
	c[diodeK] = diodeMaxK * in.reso

	return c
}

func designK35(in designInput, t Type, s Subtype) coeffs {
	g := in.prewarped()
	bigG := design.OnePoleGain(g)
	k := k35MinK + k35RangeK*in.reso
	inv := 1 / (1 + g)

	var c coeffs
	c[k35G] = bigG
	c[k35K] = k
	c[k35Alpha0] = 1 / core.GuardDenominator(1-k*bigG+k*bigG*bigG, 1e-6)
	c[k35Saturation] = float64(s.Variant())

	if t == TypeK35HP {
		c[k35BetaA] = -bigG * inv
		c[k35BetaB] = inv
	} else {
		c[k35BetaA] = (k - k*bigG) * inv
		c[k35BetaB] = -inv
	}

	return c
}
