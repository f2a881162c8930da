package quad

import "fmt"

// Type selects a filter family.
type Type int

const (
	TypeNone Type = iota
	TypeLP12
	TypeLP24
	TypeHP12
	TypeHP24
	TypeBP12
	TypeBP24
	TypeNotch
	TypeAllpass
	TypeLadder
	TypeVintageLadder
	TypeDiode
	TypeK35LP
	TypeK35HP
	TypeCutoffWarpLP
	TypeCutoffWarpHP
	TypeResonanceWarpLP
	TypeResonanceWarpHP
	TypeTriPole
	TypeCombPos
	TypeCombNeg
	TypeSampleHold

	numTypes
)

// Subtype selects a variant within a Type. The low byte is the variant;
// higher bits carry flags such as SubtypeExtended.
type Subtype int

// SubtypeExtended requests the long comb delay line.
const SubtypeExtended Subtype = 0x100

// Variant returns the variant index without flags.
func (s Subtype) Variant() int {
	return int(s & 0xff)
}

// Extended reports whether the extended-length flag is set.
func (s Subtype) Extended() bool {
	return s&SubtypeExtended != 0
}

// Subtypes shared by the biquad families.
const (
	SubtypeClean Subtype = iota
	SubtypeDriven
	SubtypeSmooth
	SubtypeSVF
)

// Ladder and diode slopes.
const (
	Subtype6dB Subtype = iota
	Subtype12dB
	Subtype18dB
	Subtype24dB
)

// Vintage ladder models.
const (
	SubtypeRungeKutta Subtype = iota
	SubtypeRungeKuttaCompensated
	SubtypeHuovilainen
	SubtypeHuovilainenCompensated
)

// K35 saturation amounts.
const (
	SubtypeK35None Subtype = iota
	SubtypeK35Mild
	SubtypeK35Moderate
	SubtypeK35Heavy
	SubtypeK35Extreme
)

// Comb mixes.
const (
	SubtypeCombHalfWet Subtype = iota
	SubtypeCombFullWet
)

// Notch variants.
const (
	SubtypeNotchStandard Subtype = iota
	SubtypeNotchMild
)

var biquadSubtypeNames = []string{"Clean", "Driven", "Smooth", "SVF"}

var warpShaperNames = []string{"Tanh", "Soft Clip", "OJD"}

var triPoleModeNames = []string{"Low Low Low", "Low High Low", "High Low High", "High High High"}

var typeInfo = [numTypes]struct {
	name     string
	subtypes []string
}{
	TypeNone:            {name: "Off"},
	TypeLP12:            {name: "LP 12 dB", subtypes: biquadSubtypeNames},
	TypeLP24:            {name: "LP 24 dB", subtypes: biquadSubtypeNames},
	TypeHP12:            {name: "HP 12 dB", subtypes: biquadSubtypeNames},
	TypeHP24:            {name: "HP 24 dB", subtypes: biquadSubtypeNames},
	TypeBP12:            {name: "BP 12 dB", subtypes: biquadSubtypeNames},
	TypeBP24:            {name: "BP 24 dB", subtypes: biquadSubtypeNames},
	TypeNotch:           {name: "Notch", subtypes: []string{"Standard", "Mild"}},
	TypeAllpass:         {name: "Allpass", subtypes: []string{"Standard"}},
	TypeLadder:          {name: "LP Ladder", subtypes: []string{"6 dB", "12 dB", "18 dB", "24 dB"}},
	TypeVintageLadder:   {name: "LP Vintage Ladder", subtypes: []string{"Type 1", "Type 1 Compensated", "Type 2", "Type 2 Compensated"}},
	TypeDiode:           {name: "LP Diode Ladder", subtypes: []string{"6 dB", "12 dB", "18 dB", "24 dB"}},
	TypeK35LP:           {name: "LP K35", subtypes: k35SubtypeNames},
	TypeK35HP:           {name: "HP K35", subtypes: k35SubtypeNames},
	TypeCutoffWarpLP:    {name: "LP Cutoff Warp", subtypes: warpNames(warpShaperNames)},
	TypeCutoffWarpHP:    {name: "HP Cutoff Warp", subtypes: warpNames(warpShaperNames)},
	TypeResonanceWarpLP: {name: "LP Resonance Warp", subtypes: warpNames(warpShaperNames[:2])},
	TypeResonanceWarpHP: {name: "HP Resonance Warp", subtypes: warpNames(warpShaperNames[:2])},
	TypeTriPole:         {name: "Tri-pole", subtypes: triPoleNames()},
	TypeCombPos:         {name: "Comb +", subtypes: combSubtypeNames},
	TypeCombNeg:         {name: "Comb -", subtypes: combSubtypeNames},
	TypeSampleHold:      {name: "Sample & Hold", subtypes: []string{"Standard"}},
}

var k35SubtypeNames = []string{"No Saturation", "Mild Saturation", "Moderate Saturation", "Heavy Saturation", "Extreme Saturation"}

var combSubtypeNames = []string{"50% Wet", "100% Wet"}

func warpNames(shapers []string) []string {
	out := make([]string, 0, maxWarpStages*len(shapers))
	for _, shaper := range shapers {
		for stages := 1; stages <= maxWarpStages; stages++ {
			suffix := "s"
			if stages == 1 {
				suffix = ""
			}

			out = append(out, fmt.Sprintf("%d Stage%s %s", stages, suffix, shaper))
		}
	}

	return out
}

func triPoleNames() []string {
	out := make([]string, 0, 2*len(triPoleModeNames))
	for _, mode := range triPoleModeNames {
		out = append(out, mode+", First", mode+", Third")
	}

	return out
}

// Types lists every declared filter type, TypeNone first.
func Types() []Type {
	out := make([]Type, 0, numTypes)
	for t := TypeNone; t < numTypes; t++ {
		out = append(out, t)
	}

	return out
}

// Valid reports whether t is a declared type.
func (t Type) Valid() bool {
	return t >= TypeNone && t < numTypes
}

// String returns the display name of t.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeInfo[t].name
}

// SubtypeCount returns the number of variants t offers. Types without
// variants report zero.
func (t Type) SubtypeCount() int {
	if !t.Valid() {
		return 0
	}

	return len(typeInfo[t].subtypes)
}

// HasSubtype reports whether s names a variant of t. Comb types also
// accept SubtypeExtended.
func (t Type) HasSubtype(s Subtype) bool {
	if !t.Valid() || s < 0 {
		return false
	}

	flags := s &^ 0xff
	if flags != 0 && (flags != SubtypeExtended || !t.isComb()) {
		return false
	}

	if t == TypeNone {
		return s == 0
	}

	return s.Variant() < t.SubtypeCount()
}

// SubtypeName returns the display name of variant s of t, or "" when t has
// no such variant.
func (t Type) SubtypeName(s Subtype) string {
	if !t.HasSubtype(s) || t == TypeNone {
		return ""
	}

	name := typeInfo[t].subtypes[s.Variant()]
	if s.Extended() {
		name += ", Extended"
	}

	return name
}

// ParseType resolves a display name produced by Type.String.
func ParseType(name string) (Type, error) {
	for t := TypeNone; t < numTypes; t++ {
		if typeInfo[t].name == name {
			return t, nil
		}
	}

	return TypeNone, fmt.Errorf("quad: unknown filter type %q", name)
}

func (t Type) isComb() bool {
	return t == TypeCombPos || t == TypeCombNeg
}
