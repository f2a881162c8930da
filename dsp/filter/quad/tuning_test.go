package quad

import (
	"math"
	"testing"
)

func twelveTone() []float64 {
	cents := make([]float64, 12)
	for i := range cents {
		cents[i] = float64(i+1) * 100
	}

	return cents
}

func TestEqualTemperament(t *testing.T) {
	et := EqualTemperament{Rate: 44100}

	tests := []struct {
		note, want float64
	}{
		{0, 1},
		{12, 2},
		{-12, 0.5},
		{7, math.Pow(2, 7.0/12)},
	}

	for _, tc := range tests {
		if got := et.NoteToPitch(tc.note); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("NoteToPitch(%v)=%v, want %v", tc.note, got, tc.want)
		}
	}

	if et.SampleRate() != 44100 {
		t.Fatalf("SampleRate()=%v", et.SampleRate())
	}

	if got := (EqualTemperament{}).SampleRate(); got != defaultSampleRate {
		t.Fatalf("default SampleRate()=%v", got)
	}
}

func TestScaleTuningTwelveToneMatchesEqualTemperament(t *testing.T) {
	st := ScaleTuning{Rate: 48000, Cents: twelveTone()}
	et := EqualTemperament{Rate: 48000}

	for note := -40.0; note <= 40; note += 0.37 {
		got, want := st.NoteToPitch(note), et.NoteToPitch(note)
		if math.Abs(got-want) > 1e-9*want {
			t.Fatalf("note %v: scale=%v, equal=%v", note, got, want)
		}
	}
}

func TestScaleTuningPeriodAndInterpolation(t *testing.T) {
	// One degree per octave.
	st := ScaleTuning{Cents: []float64{1200}}

	tests := []struct {
		note, want float64
	}{
		{0, 1},
		{1, 2},
		{-1, 0.5},
		{0.5, math.Sqrt2},
		{-2.5, math.Pow(2, -2.5)},
	}

	for _, tc := range tests {
		if got := st.NoteToPitch(tc.note); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("NoteToPitch(%v)=%v, want %v", tc.note, got, tc.want)
		}
	}
}

func TestScaleTuningNonOctavePeriod(t *testing.T) {
	// Two steps of 150 cents repeating every 300 cents.
	st := ScaleTuning{Cents: []float64{150, 300}}

	if got, want := st.NoteToPitch(3), math.Exp2(450.0/1200); math.Abs(got-want) > 1e-12 {
		t.Fatalf("NoteToPitch(3)=%v, want %v", got, want)
	}

	if got, want := st.NoteToPitch(-1), math.Exp2(-150.0/1200); math.Abs(got-want) > 1e-12 {
		t.Fatalf("NoteToPitch(-1)=%v, want %v", got, want)
	}
}

func TestScaleTuningDegenerateFallsBack(t *testing.T) {
	for _, st := range []ScaleTuning{{}, {Cents: []float64{0}}, {Cents: []float64{100, -5}}} {
		if got := st.NoteToPitch(12); math.Abs(got-2) > 1e-12 {
			t.Fatalf("%+v: NoteToPitch(12)=%v, want 2", st, got)
		}
	}
}
