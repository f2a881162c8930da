package delay

import (
	"errors"
	"testing"
)

func TestPoolGetReturnsZeroed(t *testing.T) {
	p, err := NewPool(2048)
	if err != nil {
		t.Fatal(err)
	}

	r, err := p.Get()
	if err != nil {
		t.Fatal(err)
	}

	if r.Len() != 2048 {
		t.Fatalf("Len() = %d, want 2048", r.Len())
	}

	r.Set(7, 42)
	p.Put(r)

	r2, err := p.Get()
	if err != nil {
		t.Fatal(err)
	}

	if r2 != r {
		t.Fatal("expected recycled ring")
	}

	if r2.At(7) != 0 {
		t.Fatalf("recycled ring not zeroed: %v", r2.At(7))
	}
}

func TestPoolExhaustion(t *testing.T) {
	p, err := NewPool(16, WithPoolSize(2))
	if err != nil {
		t.Fatal(err)
	}

	a, _ := p.Get()
	if _, err := p.GetCapacity(64); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Get(); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("err = %v, want ErrPoolExhausted", err)
	}

	if p.InUse() != 2 {
		t.Fatalf("InUse() = %d, want 2", p.InUse())
	}

	p.Put(a)
	if _, err := p.Get(); err != nil {
		t.Fatalf("Get after Put: %v", err)
	}
}

func TestPoolCapacityBuckets(t *testing.T) {
	p, err := NewPool(2048, WithPreallocate(1))
	if err != nil {
		t.Fatal(err)
	}

	ext, err := p.GetCapacity(8192)
	if err != nil {
		t.Fatal(err)
	}

	if ext.Len() != 8192 {
		t.Fatalf("extended Len() = %d", ext.Len())
	}

	p.Put(ext)

	base, err := p.Get()
	if err != nil {
		t.Fatal(err)
	}

	if base.Len() != 2048 {
		t.Fatalf("base Len() = %d, want 2048", base.Len())
	}
}

func TestPoolOptionsValidation(t *testing.T) {
	if _, err := NewPool(0); !errors.Is(err, ErrCapacity) {
		t.Fatalf("err = %v, want ErrCapacity", err)
	}

	if _, err := NewPool(16, WithPoolSize(0)); err == nil {
		t.Fatal("expected pool size error")
	}

	if _, err := NewPool(16, WithPoolSize(1), WithPreallocate(2)); err == nil {
		t.Fatal("expected preallocate error")
	}
}

func TestPoolPutNilSafe(t *testing.T) {
	p, err := NewPool(16)
	if err != nil {
		t.Fatal(err)
	}

	p.Put(nil)

	if p.InUse() != 0 {
		t.Fatalf("InUse() = %d", p.InUse())
	}
}
