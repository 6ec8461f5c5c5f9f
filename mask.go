package syslog

import "sync/atomic"

// Mask holds the enabled-level bitmask shared by every dispatch.
// Reads are lock-free; the owning Dispatcher is the only writer.
type Mask struct {
	bits atomic.Uint32
}

// newMask creates a mask with the given initial bits
func newMask(bits uint32) *Mask {
	m := &Mask{}
	m.bits.Store(bits)
	return m
}

// Load returns the current mask
func (m *Mask) Load() uint32 {
	return m.bits.Load()
}

// swap stores bits and returns the previous mask, zero only queries
func (m *Mask) swap(bits uint32) uint32 {
	if bits == 0 {
		return m.bits.Load()
	}
	return m.bits.Swap(bits)
}
