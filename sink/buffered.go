package sink

import (
	"io"
	"sync"
)

// Buffered writes into the kernel log backend.
// Serializing concurrent writers is the backend's job.
type Buffered struct {
	backend io.Writer
}

// NewBuffered binds a buffered sink to backend, a nil backend discards output
func NewBuffered(backend io.Writer) *Buffered {
	if backend == nil {
		backend = io.Discard
	}
	return &Buffered{backend: backend}
}

// Write forwards p to the backend
func (b *Buffered) Write(p []byte) (int, error) {
	return b.backend.Write(p)
}

// Ring returns the backend when it is the in-memory ring, nil otherwise
func (b *Buffered) Ring() *Ring {
	r, _ := b.backend.(*Ring)
	return r
}

// Kind returns KindBuffered
func (b *Buffered) Kind() Kind {
	return KindBuffered
}

// Backend returns the writer this sink forwards to
func (b *Buffered) Backend() io.Writer {
	return b.backend
}

// Ring is a fixed-size in-memory log buffer that overwrites its oldest
// bytes once full.
type Ring struct {
	mu   sync.Mutex
	buf  []byte
	head int // Next write position
	size int // Bytes currently held
}

// NewRing creates a ring holding at most capacity bytes
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring{buf: make([]byte, capacity)}
}

// Write appends p, discarding the oldest bytes on overflow. It never fails.
func (r *Ring) Write(p []byte) (int, error) {
	n := len(p)

	r.mu.Lock()
	defer r.mu.Unlock()

	capacity := len(r.buf)
	// Only the tail of an oversized write can survive
	if len(p) > capacity {
		p = p[len(p)-capacity:]
	}

	for len(p) > 0 {
		c := copy(r.buf[r.head:], p)
		p = p[c:]
		r.head = (r.head + c) % capacity
		r.size += c
	}
	if r.size > capacity {
		r.size = capacity
	}
	return n, nil
}

// Bytes returns a copy of the held bytes, oldest first
func (r *Ring) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, 0, r.size)
	start := (r.head - r.size + len(r.buf)) % len(r.buf)
	if start+r.size <= len(r.buf) {
		return append(out, r.buf[start:start+r.size]...)
	}
	out = append(out, r.buf[start:]...)
	return append(out, r.buf[:r.head]...)
}

// Len returns the number of bytes held
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Cap returns the ring capacity
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Reset discards all held bytes
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.size = 0
}
