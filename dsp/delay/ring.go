package delay

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/cwbudde/algo-synthfilter/dsp/interp"
)

const (
	// MaxCapacity bounds a single ring.
	MaxCapacity = 1 << 20

	sincOffset = interp.SincTaps / 2
)

// ErrCapacity reports an invalid ring capacity.
var ErrCapacity = errors.New("delay: invalid capacity")

// Ring is a circular buffer whose length is a power of two, so positions
// wrap with a mask. Positions are free-running integers.
type Ring struct {
	buf  []float64
	mask int
}

// NewRing returns a zeroed ring holding at least capacity samples.
func NewRing(capacity int) (*Ring, error) {
	size, err := roundCapacity(capacity)
	if err != nil {
		return nil, err
	}

	return &Ring{buf: make([]float64, size), mask: size - 1}, nil
}

func roundCapacity(capacity int) (int, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrCapacity, capacity, MaxCapacity)
	}

	return 1 << bits.Len(uint(capacity-1)), nil
}

// Len returns the ring length.
func (r *Ring) Len() int {
	return len(r.buf)
}

// Mask returns Len()-1.
func (r *Ring) Mask() int {
	return r.mask
}

// At returns the sample stored at pos.
func (r *Ring) At(pos int) float64 {
	return r.buf[pos&r.mask]
}

// Set stores v at pos.
func (r *Ring) Set(pos int, v float64) {
	r.buf[pos&r.mask] = v
}

// ReadSinc returns the band-limited sample delay samples before writePos,
// where writePos is the slot about to be written. delay must be at least
// interp.SincTaps and at most Len()-interp.SincTaps.
func (r *Ring) ReadSinc(writePos int, delay float64, table *interp.SincTable) float64 {
	whole := int(delay)
	frac := delay - float64(whole)

	base := writePos - whole - sincOffset

	var window [interp.SincTaps]float64
	for k := range window {
		window[k] = r.buf[(base+k)&r.mask]
	}

	return table.Interpolate(&window, 1-frac)
}

// Reset zeroes the ring.
func (r *Ring) Reset() {
	clear(r.buf)
}
