package delay

import (
	"errors"
	"fmt"
	"sync"
)

const defaultPoolSize = 64

// ErrPoolExhausted is returned by Get when every ring is checked out.
var ErrPoolExhausted = errors.New("delay: pool exhausted")

// PoolOption mutates pool construction parameters.
type PoolOption func(*poolConfig) error

type poolConfig struct {
	size        int
	preallocate int
}

// WithPoolSize bounds the number of rings checked out at once.
func WithPoolSize(size int) PoolOption {
	return func(cfg *poolConfig) error {
		if size <= 0 {
			return fmt.Errorf("delay: pool size must be > 0: %d", size)
		}

		cfg.size = size

		return nil
	}
}

// WithPreallocate allocates n rings of the pool's base capacity up front.
func WithPreallocate(n int) PoolOption {
	return func(cfg *poolConfig) error {
		if n < 0 {
			return fmt.Errorf("delay: preallocate must be >= 0: %d", n)
		}

		cfg.preallocate = n

		return nil
	}
}

// Pool hands out zeroed rings and recycles them by length. It is safe for
// concurrent use but is meant for control-path calls only.
type Pool struct {
	mu          sync.Mutex
	base        int
	size        int
	outstanding int
	free        map[int][]*Ring
}

// NewPool returns a pool whose default ring holds baseCapacity samples.
func NewPool(baseCapacity int, opts ...PoolOption) (*Pool, error) {
	base, err := roundCapacity(baseCapacity)
	if err != nil {
		return nil, err
	}

	cfg := poolConfig{size: defaultPoolSize}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.preallocate > cfg.size {
		return nil, fmt.Errorf("delay: preallocate %d exceeds pool size %d", cfg.preallocate, cfg.size)
	}

	p := &Pool{
		base: base,
		size: cfg.size,
		free: make(map[int][]*Ring),
	}

	for range cfg.preallocate {
		p.free[base] = append(p.free[base], &Ring{buf: make([]float64, base), mask: base - 1})
	}

	return p, nil
}

// Get checks out a zeroed ring with the base capacity.
func (p *Pool) Get() (*Ring, error) {
	return p.GetCapacity(p.base)
}

// GetCapacity checks out a zeroed ring holding at least capacity samples.
func (p *Pool) GetCapacity(capacity int) (*Ring, error) {
	size, err := roundCapacity(capacity)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.outstanding >= p.size {
		return nil, ErrPoolExhausted
	}

	p.outstanding++

	if free := p.free[size]; len(free) > 0 {
		r := free[len(free)-1]
		p.free[size] = free[:len(free)-1]
		r.Reset()

		return r, nil
	}

	return &Ring{buf: make([]float64, size), mask: size - 1}, nil
}

// Put returns r to the pool. The caller must not use r afterwards.
func (p *Pool) Put(r *Ring) {
	if r == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.outstanding > 0 {
		p.outstanding--
	}

	p.free[r.Len()] = append(p.free[r.Len()], r)
}

// BaseCapacity returns the default ring length.
func (p *Pool) BaseCapacity() int {
	return p.base
}

// InUse returns the number of rings currently checked out.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.outstanding
}

// Size returns the checkout limit.
func (p *Pool) Size() int {
	return p.size
}
