// FILE: lixenwraith/syslog/builder.go
package syslog

import (
	"io"

	"github.com/lixenwraith/syslog/formatter"
	"github.com/lixenwraith/syslog/sink"
)

// Builder provides a fluent API for building dispatchers.
// It wraps a Config instance plus the runtime collaborators that cannot be
// expressed in a configuration file.
type Builder struct {
	cfg      *Config
	hooks    hooks
	fallback *bool // Requested interrupt fallback, applied at Build
	err      error // Accumulate errors for deferred handling
}

// NewBuilder creates a new builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Dispatcher with the specified configuration.
func (b *Builder) Build() (*Dispatcher, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg := b.cfg.Clone()
	if b.fallback != nil {
		if err := applyFallback(cfg, *b.fallback); err != nil {
			return nil, err
		}
	}
	return newDispatcher(cfg, b.hooks)
}

// applyFallback resolves a fallback request against the final sink choice
func applyFallback(cfg *Config, enable bool) error {
	if cfg.PrimaryKind() == sink.KindDescriptor {
		cfg.EnableLowLevelSink = enable
		return nil
	}
	if enable {
		return fmtErrorf("lowlevel fallback requires the descriptor sink, primary sink is %s", cfg.PrimaryKind())
	}
	return nil
}

// Config replaces the configuration built so far.
func (b *Builder) Config(cfg *Config) *Builder {
	if cfg == nil {
		b.setErr(fmtErrorf("configuration cannot be nil"))
		return b
	}
	b.cfg = cfg.Clone()
	return b
}

// Override applies "key=value" overrides to the configuration.
func (b *Builder) Override(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.cfg.ApplyOverride(overrides...); err != nil {
		b.err = err
	}
	return b
}

// Sink makes kind the only primary sink. A previously enabled low-level
// sink stays as the interrupt fallback when kind is the descriptor sink.
func (b *Builder) Sink(kind sink.Kind) *Builder {
	b.cfg.SetSink(kind, true)
	return b
}

// SinkString sets the primary sink by name.
func (b *Builder) SinkString(name string) *Builder {
	if b.err != nil {
		return b
	}
	kind, err := sink.ParseKind(name)
	if err != nil {
		b.err = err
		return b
	}
	return b.Sink(kind)
}

// LowLevelFallback enables the low-level sink as interrupt fallback.
// The request is resolved at Build, where enabling it on anything but a
// descriptor build is an error.
func (b *Builder) LowLevelFallback(enable bool) *Builder {
	b.fallback = &enable
	return b
}

// Descriptor sets the descriptor written by the descriptor sink.
func (b *Builder) Descriptor(fd int) *Builder {
	b.cfg.Descriptor = int64(fd)
	return b
}

// RingSize sets the capacity of the built-in buffered backend.
func (b *Builder) RingSize(size int64) *Builder {
	b.cfg.RingSize = size
	return b
}

// EnableTimestamp enables the "[sec.usec]" prefix.
func (b *Builder) EnableTimestamp(enable bool) *Builder {
	b.cfg.EnableTimestamp = enable
	return b
}

// MaskUpTo sets the initial mask to every level up to level.
func (b *Builder) MaskUpTo(level Priority) *Builder {
	b.cfg.MaskUpTo = levelNames[level.Level()]
	return b
}

// MaskUpToString sets the initial mask from a level name.
func (b *Builder) MaskUpToString(name string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(name)
	if err != nil {
		b.err = err
		return b
	}
	return b.MaskUpTo(level)
}

// FormatterName selects a formatter by name.
func (b *Builder) FormatterName(name string) *Builder {
	b.cfg.Formatter = name
	return b
}

// InternalErrorsToStderr enables build diagnostics on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Formatter injects a formatter, overriding the configured name.
func (b *Builder) Formatter(f formatter.Formatter) *Builder {
	b.hooks.formatter = f
	return b
}

// Clock injects the timestamp clock source.
func (b *Builder) Clock(c Clock) *Builder {
	b.hooks.clock = c
	return b
}

// HardwareReady injects the predicate telling whether the timer hardware
// can be read yet.
func (b *Builder) HardwareReady(ready func() bool) *Builder {
	b.hooks.ready = ready
	return b
}

// InterruptProbe injects the interrupt context predicate.
func (b *Builder) InterruptProbe(probe InterruptProbe) *Builder {
	b.hooks.interrupt = probe
	return b
}

// PutChar injects the hardware character primitive for the low-level sink.
func (b *Builder) PutChar(putc sink.PutCharFunc) *Builder {
	b.hooks.sinks.putc = putc
	return b
}

// Backend injects the buffered sink backend in place of the built-in ring.
func (b *Builder) Backend(w io.Writer) *Builder {
	b.hooks.sinks.backend = w
	return b
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Example usage:
// d, err := syslog.NewBuilder().
//
//	Sink(sink.KindDescriptor).
//	LowLevelFallback(true).
//	EnableTimestamp(true).
//	MaskUpToString("warning").
//	InterruptProbe(irq.InInterrupt).
//	Build()
//
// if err == nil {
//
//	d.Syslog(syslog.LevelErr, "bus fault at %#x\n", addr)
//
// }
