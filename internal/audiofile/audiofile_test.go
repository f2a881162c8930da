package audiofile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-synthfilter/internal/testutil"
)

func testAudio() *Audio {
	return &Audio{
		SampleRate: 44100,
		Channels: [][]float64{
			testutil.DeterministicSine(440, 44100, 0.5, 1000),
			testutil.DeterministicNoise(9, 0.9, 1000),
		},
	}
}

func roundTrip(t *testing.T, a *Audio, opts WriteOptions) *Audio {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := WriteFile(path, a, opts); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	return got
}

func TestWAVRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts WriteOptions
		eps  float64
	}{
		{"16 bit", WriteOptions{BitDepth: 16}, 2.0 / 32768},
		{"16 bit dithered", WriteOptions{BitDepth: 16, Dither: true, Seed: 3}, 3.0 / 32768},
		{"24 bit", WriteOptions{BitDepth: 24}, 2.0 / (1 << 23)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := testAudio()
			got := roundTrip(t, in, tc.opts)

			if got.SampleRate != in.SampleRate || len(got.Channels) != 2 || got.Frames() != in.Frames() {
				t.Fatalf("got %d Hz, %d channels, %d frames", got.SampleRate, len(got.Channels), got.Frames())
			}

			for ch := range in.Channels {
				testutil.RequireSliceNearlyEqual(t, got.Channels[ch], in.Channels[ch], tc.eps)
			}
		})
	}
}

func TestWAVClipsOverrange(t *testing.T) {
	in := &Audio{SampleRate: 8000, Channels: [][]float64{{2, -3, 0.25}}}
	got := roundTrip(t, in, WriteOptions{BitDepth: 16})

	want := []float64{32767.0 / 32768, -32767.0 / 32768, 0.25}
	testutil.RequireSliceNearlyEqual(t, got.Channels[0], want, 1e-4)
}

func TestWriteRejectsBadFormat(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "*.wav")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := WriteWAV(f, testAudio(), WriteOptions{BitDepth: 12}); !errors.Is(err, ErrFormat) {
		t.Fatalf("12-bit error = %v", err)
	}

	if err := WriteWAV(f, &Audio{SampleRate: 44100}, WriteOptions{BitDepth: 16}); !errors.Is(err, ErrFormat) {
		t.Fatalf("no channels error = %v", err)
	}
}

func TestReadRejectsUnknownInput(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); !errors.Is(err, ErrFormat) {
		t.Fatalf("Read(.txt) error = %v", err)
	}

	if _, err := ReadWAV(bytes.NewReader([]byte("RIFFnope"))); err == nil {
		t.Fatal("expected error for truncated wav")
	}

	if _, err := ReadMP3(bytes.NewReader(make([]byte, 64))); err == nil {
		t.Fatal("expected error for silent garbage mp3")
	}
}

func TestFramesUsesShortestChannel(t *testing.T) {
	a := &Audio{Channels: [][]float64{make([]float64, 5), make([]float64, 3)}}
	if a.Frames() != 3 {
		t.Fatalf("Frames()=%d", a.Frames())
	}

	if (&Audio{}).Frames() != 0 {
		t.Fatal("empty audio should have no frames")
	}
}
