package syslog

import (
	"sync/atomic"

	"github.com/lixenwraith/syslog/sink"
)

// Path is the route a single dispatch takes
type Path int

const (
	PathPrimary    Path = iota // Use the configured sink
	PathFallback               // Use the low-level sink instead of the descriptor
	PathSuppressed             // Emit nothing
)

// String returns the path name
func (p Path) String() string {
	switch p {
	case PathPrimary:
		return "primary"
	case PathFallback:
		return "fallback"
	case PathSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// InterruptProbe reports whether the caller is running in interrupt context.
// It is queried on every dispatch and never cached.
type InterruptProbe func() bool

// NeverInterrupt is the probe for hosts without interrupt handlers
func NeverInterrupt() bool {
	return false
}

// SelectPath decides where a dispatch may write given the primary sink kind,
// whether a low-level fallback is configured, and the current context.
// Only the descriptor sink is affected by context.
func SelectPath(primary sink.Kind, lowLevelFallback, inInterrupt bool) Path {
	switch primary {
	case sink.KindBuffered, sink.KindLowLevel:
		return PathPrimary
	case sink.KindDescriptor:
		if !inInterrupt {
			return PathPrimary
		}
		if lowLevelFallback {
			return PathFallback
		}
		return PathSuppressed
	default:
		return PathSuppressed
	}
}

// IRQState tracks interrupt handler nesting for hosts that simulate
// interrupts in software. Its InInterrupt method satisfies InterruptProbe.
type IRQState struct {
	depth atomic.Int32
}

// Enter marks the start of an interrupt handler
func (s *IRQState) Enter() {
	s.depth.Add(1)
}

// Leave marks the end of an interrupt handler, unbalanced calls are ignored
func (s *IRQState) Leave() {
	for {
		d := s.depth.Load()
		if d <= 0 {
			return
		}
		if s.depth.CompareAndSwap(d, d-1) {
			return
		}
	}
}

// InInterrupt reports whether any handler is active
func (s *IRQState) InInterrupt() bool {
	return s.depth.Load() > 0
}

// Run executes handler as an interrupt handler
func (s *IRQState) Run(handler func()) {
	s.Enter()
	defer s.Leave()
	handler()
}
