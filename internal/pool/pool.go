// Package pool provides sample buffer reuse for julia images.
package pool

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAllocation is returned when a buffer of the requested size cannot be
// obtained.
var ErrAllocation = errors.New("pool: allocation failed")

// Pool is a thread-safe pool of 8-bit sample buffers.
//
// Pool groups buffers by length so that an image released by one render can
// back the next image of the same size. Buffers handed out by Get are always
// zeroed.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]uint8
	maxSize int // max buffers per bucket

	// alloc is replaced in tests to simulate allocation failure.
	alloc func(n int) []uint8
}

// New creates a pool retaining at most maxPerBucket buffers of each length.
// A maxPerBucket of 0 means unlimited.
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]uint8),
		maxSize: maxPerBucket,
		alloc:   func(n int) []uint8 { return make([]uint8, n) },
	}
}

// Get returns a zeroed buffer of length n, reusing a released one when
// available. A runtime refusal to allocate (for example makeslice rejecting
// the length) is reported as ErrAllocation instead of a panic.
func (p *Pool) Get(n int) (buf []uint8, err error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrAllocation, n)
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf = bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf, nil
	}
	alloc := p.alloc
	p.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d bytes: %v", ErrAllocation, n, r)
		}
	}()
	buf = alloc(n)
	if len(buf) != n {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocation, n)
	}
	return buf, nil
}

// Put returns a buffer to the pool. The buffer is cleared before it is
// stored. Nil buffers and buffers beyond bucket capacity are dropped.
func (p *Pool) Put(buf []uint8) {
	if len(buf) == 0 {
		return
	}
	clear(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[len(buf)]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[len(buf)] = append(bucket, buf)
}

// Len reports how many buffers of length n are currently retained.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

// SetAllocator replaces the function used to create new buffers and returns
// the previous one. A nil fn restores make.
func (p *Pool) SetAllocator(fn func(n int) []uint8) func(n int) []uint8 {
	if fn == nil {
		fn = func(n int) []uint8 { return make([]uint8, n) }
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	prev := p.alloc
	p.alloc = fn
	return prev
}

// Default is the package-level pool used by julia images.
var Default = New(8)
