// Package buffer provides the shared buffer capability and a
// lock-protected pool that recycles render-block buffers, keeping the
// render path free of allocations.
package buffer

import "sync"

// Buffer is the capability shared by audio and control render-block
// buffers: a fixed length, in-place gain and in-place clearing for
// reuse. Gain semantics differ per kind (amplitude for audio, NoteOn
// velocity for control); both are no-ops for gain 1. Clear must be
// idempotent and must not change the length.
type Buffer interface {
	Len() int
	Gain(g float64)
	Clear()
}

// Pool is a free list of buffers of one kind and one length. The free
// list is the only state touched from multiple threads; it is guarded
// by a single mutex held only for the push or pop itself.
type Pool[T Buffer] struct {
	length int
	alloc  func(length int) T

	mu   sync.Mutex
	free []T
}

// NewPool creates a pool with no pre-existing buffers. alloc constructs
// one buffer of the requested length and is called under the pool lock
// only on an acquire miss.
func NewPool[T Buffer](length int, alloc func(length int) T) *Pool[T] {
	return &Pool[T]{length: length, alloc: alloc}
}

// Allocate eagerly constructs n fresh buffers and pushes them onto the
// free list. Call it at configuration time, not while rendering.
func (p *Pool[T]) Allocate(n int) {
	bufs := make([]T, n)
	for i := range bufs {
		bufs[i] = p.alloc(p.length)
	}
	p.mu.Lock()
	p.free = append(p.free, bufs...)
	p.mu.Unlock()
}

// Len returns the current free-list size.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Length returns the configured buffer length.
func (p *Pool[T]) Length() int {
	return p.length
}

// Acquire pops one buffer from the free list. On an empty list it
// falls back to constructing a fresh buffer, which may break real-time
// guarantees; pre-allocate enough to avoid the miss.
func (p *Pool[T]) Acquire() *Lease[T] {
	p.mu.Lock()
	var buf T
	if n := len(p.free); n > 0 {
		buf = p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		buf = p.alloc(p.length)
	}
	p.mu.Unlock()

	return &Lease[T]{pool: p, buf: buf, has: true}
}

// Guard returns an empty lease bound to this pool, for call sites that
// later Put an externally obtained buffer.
func (p *Pool[T]) Guard() *Lease[T] {
	return &Lease[T]{pool: p}
}

// Lease scopes ownership of at most one pooled buffer. On Release, a
// still-held buffer is cleared and pushed back onto the free list, so
// every acquired buffer is either explicitly taken out or returned
// with no stale data.
type Lease[T Buffer] struct {
	pool *Pool[T]
	buf  T
	has  bool
}

// Has reports whether the lease currently holds a buffer.
func (l *Lease[T]) Has() bool {
	return l.has
}

// Get returns the held buffer. It is only valid while Has reports true.
func (l *Lease[T]) Get() T {
	return l.buf
}

// Put hands a buffer to the lease, replacing any held one.
func (l *Lease[T]) Put(buf T) {
	l.buf = buf
	l.has = true
}

// Take transfers the buffer out of the lease; the caller now owns it
// and the lease will return nothing.
func (l *Lease[T]) Take() (T, bool) {
	buf, has := l.buf, l.has
	var zero T
	l.buf = zero
	l.has = false
	return buf, has
}

// Release returns a still-held buffer to the pool, cleared. Call it on
// scope exit, typically via defer; releasing an empty or already
// released lease does nothing.
func (l *Lease[T]) Release() {
	buf, has := l.Take()
	if !has {
		return
	}
	buf.Clear()
	l.pool.mu.Lock()
	l.pool.free = append(l.pool.free, buf)
	l.pool.mu.Unlock()
}
