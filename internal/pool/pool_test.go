package pool

import (
	"errors"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		maxPerBucket int
	}{
		{name: "zero means unlimited", maxPerBucket: 0},
		{name: "positive limit", maxPerBucket: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.maxPerBucket)
			if p.maxSize != tt.maxPerBucket {
				t.Errorf("maxSize = %d, want %d", p.maxSize, tt.maxPerBucket)
			}
			if p.buckets == nil {
				t.Error("buckets map is nil")
			}
		})
	}
}

func TestPool_GetPut_Cleared(t *testing.T) {
	p := New(4)

	buf, err := p.Get(64)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(buf) != 64 {
		t.Fatalf("len = %d, want 64", len(buf))
	}
	for i := range buf {
		buf[i] = 0xAB
	}
	p.Put(buf)

	if got := p.Len(64); got != 1 {
		t.Fatalf("Len(64) = %d, want 1", got)
	}

	again, err := p.Get(64)
	if err != nil {
		t.Fatalf("Get after Put: %v", err)
	}
	if &again[0] != &buf[0] {
		t.Error("expected the released buffer to be reused")
	}
	for i, v := range again {
		if v != 0 {
			t.Fatalf("reused buffer not cleared at %d: %d", i, v)
		}
	}
}

func TestPool_BucketLimit(t *testing.T) {
	p := New(2)
	for i := 0; i < 5; i++ {
		p.Put(make([]uint8, 16))
	}
	if got := p.Len(16); got != 2 {
		t.Errorf("Len(16) = %d, want 2", got)
	}
}

func TestPool_PutNil(t *testing.T) {
	p := New(2)
	p.Put(nil)
	if got := p.Len(0); got != 0 {
		t.Errorf("Len(0) = %d, want 0", got)
	}
}

func TestPool_GetInvalidLength(t *testing.T) {
	p := New(2)
	for _, n := range []int{0, -1} {
		if _, err := p.Get(n); !errors.Is(err, ErrAllocation) {
			t.Errorf("Get(%d) error = %v, want ErrAllocation", n, err)
		}
	}
}

func TestPool_AllocatorPanic(t *testing.T) {
	p := New(2)
	p.SetAllocator(func(n int) []uint8 {
		panic("runtime error: makeslice: len out of range")
	})

	buf, err := p.Get(128)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("error = %v, want ErrAllocation", err)
	}
	if buf != nil {
		t.Error("expected nil buffer on failure")
	}

	p.SetAllocator(nil)
	if _, err := p.Get(128); err != nil {
		t.Errorf("Get after restoring allocator: %v", err)
	}
}

func TestPool_AllocatorShort(t *testing.T) {
	p := New(2)
	p.SetAllocator(func(int) []uint8 { return nil })
	if _, err := p.Get(8); !errors.Is(err, ErrAllocation) {
		t.Errorf("error = %v, want ErrAllocation", err)
	}
}

func TestPool_Concurrent(t *testing.T) {
	p := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				buf, err := p.Get(32)
				if err != nil {
					t.Error(err)
					return
				}
				buf[0] = 1
				p.Put(buf)
			}
		}()
	}
	wg.Wait()
}
