// Package audiofile decodes WAV and MP3 sources into per-channel float
// buffers and writes dithered PCM WAV files.
package audiofile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

const wavFormatPCM = 1

// ErrFormat reports an unsupported file or sample format.
var ErrFormat = errors.New("audiofile: unsupported format")

// Audio is deinterleaved sample data in [-1, 1].
type Audio struct {
	SampleRate int
	Channels   [][]float64
}

// Frames returns the length of the shortest channel.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}

	n := len(a.Channels[0])
	for _, ch := range a.Channels[1:] {
		n = min(n, len(ch))
	}

	return n
}

// Read decodes path, choosing the decoder by extension.
func Read(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return ReadWAV(f)
	case ".mp3":
		return ReadMP3(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, filepath.Ext(path))
	}
}

// ReadWAV decodes an integer PCM WAV stream.
func ReadWAV(r io.ReadSeeker) (*Audio, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: not a PCM wav file", ErrFormat)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audiofile: decode wav: %w", err)
	}

	nch := buf.Format.NumChannels
	if nch <= 0 || buf.SourceBitDepth <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d bits", ErrFormat, nch, buf.SourceBitDepth)
	}

	scale := 1 / math.Exp2(float64(buf.SourceBitDepth-1))
	if buf.SourceBitDepth == 8 {
		// 8-bit wav is unsigned.
		return deinterleave(buf.Format.SampleRate, nch, len(buf.Data), func(i int) float64 {
			return float64(buf.Data[i]-128) * scale
		}), nil
	}

	return deinterleave(buf.Format.SampleRate, nch, len(buf.Data), func(i int) float64 {
		return float64(buf.Data[i]) * scale
	}), nil
}

// ReadMP3 decodes an MP3 stream. The decoder always yields stereo.
func ReadMP3(r io.Reader) (*Audio, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audiofile: decode mp3: %w", err)
	}

	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("audiofile: decode mp3: %w", err)
	}

	const bytesPerSample = 2

	return deinterleave(d.SampleRate(), 2, len(raw)/bytesPerSample, func(i int) float64 {
		v := int16(binary.LittleEndian.Uint16(raw[i*bytesPerSample:]))
		return float64(v) / 32768
	}), nil
}

func deinterleave(rate, nch, n int, at func(int) float64) *Audio {
	frames := n / nch
	a := &Audio{SampleRate: rate, Channels: make([][]float64, nch)}

	for ch := range a.Channels {
		buf := make([]float64, frames)
		for i := range buf {
			buf[i] = at(i*nch + ch)
		}

		a.Channels[ch] = buf
	}

	return a
}

// WriteOptions control WAV output.
type WriteOptions struct {
	// BitDepth is 16, 24 or 32.
	BitDepth int
	// Dither adds one LSB of TPDF noise before rounding.
	Dither bool
	// Seed selects the dither sequence.
	Seed int64
}

// WriteWAV encodes a as integer PCM. Samples are clipped to [-1, 1].
func WriteWAV(w io.WriteSeeker, a *Audio, opts WriteOptions) error {
	switch opts.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d-bit output", ErrFormat, opts.BitDepth)
	}

	nch := len(a.Channels)
	if nch == 0 || a.SampleRate <= 0 {
		return fmt.Errorf("%w: %d channels at %d Hz", ErrFormat, nch, a.SampleRate)
	}

	frames := a.Frames()
	fullScale := math.Exp2(float64(opts.BitDepth-1)) - 1
	state := vecmath.NewDitherState(opts.Seed)

	data := make([]int, frames*nch)
	scratch := make([]float64, frames)

	for ch, src := range a.Channels {
		vecmath.ScaleBlock(scratch, src[:frames], fullScale)

		if opts.Dither {
			vecmath.AddDitherTPDF(scratch, 1, state)
		}

		for i, v := range scratch {
			data[i*nch+ch] = int(math.Round(math.Max(-fullScale, math.Min(fullScale, v))))
		}
	}

	enc := wav.NewEncoder(w, a.SampleRate, opts.BitDepth, nch, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: nch, SampleRate: a.SampleRate},
		Data:           data,
		SourceBitDepth: opts.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audiofile: encode wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("audiofile: encode wav: %w", err)
	}

	return nil
}

// WriteFile writes a as a WAV file at path.
func WriteFile(path string, a *Audio, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteWAV(f, a, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
