package sink

import "io"

// StdoutFD is the descriptor used when none is configured
const StdoutFD = 1

// Descriptor writes straight to a fixed file descriptor. It may block, so it
// must never be reached from interrupt context.
type Descriptor struct {
	fd int
}

// NewDescriptor binds a sink to fd
func NewDescriptor(fd int) *Descriptor {
	return &Descriptor{fd: fd}
}

// Write issues a single write, short writes are reported, never retried
func (d *Descriptor) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := writeFD(d.fd, p)
	if n < 0 {
		n = 0
	}
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Kind returns KindDescriptor
func (d *Descriptor) Kind() Kind {
	return KindDescriptor
}

// FD returns the bound descriptor
func (d *Descriptor) FD() int {
	return d.fd
}
