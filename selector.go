package syslog

import (
	"io"

	"github.com/lixenwraith/syslog/sink"
)

// sinkHooks carries the platform primitives the adapters are built on
type sinkHooks struct {
	putc    sink.PutCharFunc
	backend io.Writer
}

// boundSinks is the result of binding a configuration to adapters
type boundSinks struct {
	primary  sink.Sink  // nil when no sink is configured
	fallback sink.Sink  // Low-level sink for interrupt context on descriptor builds
	ring     *sink.Ring // Default buffered backend, nil if a backend was supplied
}

// bindSinks selects exactly one primary adapter for cfg. It runs once per
// dispatcher; dispatching never chooses between adapters again.
func bindSinks(cfg *Config, hooks sinkHooks) boundSinks {
	var bound boundSinks

	switch cfg.PrimaryKind() {
	case sink.KindBuffered:
		backend := hooks.backend
		if backend == nil {
			bound.ring = sink.NewRing(int(cfg.RingSize))
			backend = bound.ring
		}
		bound.primary = sink.NewBuffered(backend)

	case sink.KindDescriptor:
		bound.primary = sink.NewDescriptor(int(cfg.Descriptor))
		if cfg.LowLevelFallback() {
			bound.fallback = sink.NewLowLevel(hooks.putc)
		}

	case sink.KindLowLevel:
		bound.primary = sink.NewLowLevel(hooks.putc)
	}

	return bound
}
