// Package sink provides the byte destinations a dispatcher can be bound to.
// Exactly one adapter is bound per dispatcher, chosen when it is built.
package sink

import (
	"fmt"
	"io"
	"strings"
)

// Kind identifies one of the mutually exclusive sink adapters
type Kind int

const (
	KindNone       Kind = iota // No output configured, every call is a no-op
	KindBuffered               // Kernel log backend, safe from normal context only
	KindDescriptor             // Raw file descriptor, never safe from interrupt context
	KindLowLevel               // Character-at-a-time hardware output, interrupt safe
)

// String returns the configuration name of the kind
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBuffered:
		return "buffered"
	case KindDescriptor:
		return "descriptor"
	case KindLowLevel:
		return "lowlevel"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a configuration name to a Kind
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return KindNone, nil
	case "buffered":
		return KindBuffered, nil
	case "descriptor":
		return KindDescriptor, nil
	case "lowlevel":
		return KindLowLevel, nil
	default:
		return KindNone, fmt.Errorf("sink: unknown kind '%s' (use buffered, descriptor, or lowlevel)", name)
	}
}

// InterruptSafe reports whether the adapter may be used from interrupt context
func (k Kind) InterruptSafe() bool {
	return k == KindLowLevel
}

// Sink is a writable destination for formatted bytes
type Sink interface {
	io.Writer
	Kind() Kind
}
