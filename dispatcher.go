// FILE: lixenwraith/syslog/dispatcher.go
package syslog

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/syslog/formatter"
	"github.com/lixenwraith/syslog/sink"
)

// Dispatcher filters messages by priority and writes them to the one sink
// bound when it was built. It is safe for concurrent use, including from
// interrupt handlers when the bound path allows it.
type Dispatcher struct {
	cfg       *Config
	mask      *Mask
	kind      sink.Kind
	primary   sink.Sink
	fallback  sink.Sink
	ring      *sink.Ring
	probe     *TimestampProbe // nil when timestamps are disabled
	interrupt InterruptProbe
	formatter formatter.Formatter
}

// hooks are the runtime collaborators injected by the Builder
type hooks struct {
	clock     Clock
	ready     func() bool
	interrupt InterruptProbe
	formatter formatter.Formatter
	sinks     sinkHooks
}

// New creates a dispatcher from cfg using the platform defaults for every
// collaborator
func New(cfg *Config) (*Dispatcher, error) {
	return newDispatcher(cfg, hooks{})
}

// newDispatcher validates cfg and binds it to sinks and collaborators
func newDispatcher(cfg *Config, h hooks) (*Dispatcher, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmtErrorf("invalid configuration: %w", err)
	}
	cfg = cfg.Clone()

	f := h.formatter
	if f == nil {
		var err error
		if f, err = formatter.ByName(cfg.Formatter); err != nil {
			return nil, fmtErrorf("failed to create formatter: %w", err)
		}
	}

	interrupt := h.interrupt
	if interrupt == nil {
		interrupt = NeverInterrupt
	}

	bound := bindSinks(cfg, h.sinks)

	d := &Dispatcher{
		cfg:       cfg,
		mask:      newMask(cfg.InitialMask()),
		kind:      cfg.PrimaryKind(),
		primary:   bound.primary,
		fallback:  bound.fallback,
		ring:      bound.ring,
		interrupt: interrupt,
		formatter: f,
	}

	if cfg.EnableTimestamp {
		clock := h.clock
		if clock == nil {
			clock = MonotonicClock{}
		}
		d.probe = NewTimestampProbe(clock, h.ready)
	}

	d.reportBinding()
	return d, nil
}

// Syslog formats and emits a message at priority p.
// It returns the bytes produced by the formatter, or 0 when the message
// was suppressed.
func (d *Dispatcher) Syslog(p Priority, format string, args ...any) (int, error) {
	return d.VSyslog(p, format, args)
}

// VSyslog is Syslog with an already collected argument list.
func (d *Dispatcher) VSyslog(p Priority, format string, args []any) (int, error) {
	// Context only matters when the descriptor sink is primary
	inInterrupt := d.kind == sink.KindDescriptor && d.interrupt()

	switch SelectPath(d.kind, d.fallback != nil, inInterrupt) {
	case PathSuppressed:
		return 0, nil
	case PathFallback:
		// Interrupt context output is not subject to the mask
		return d.emit(d.fallback, format, args)
	}

	if !Admit(p, d.mask.Load()) {
		return 0, nil
	}
	return d.emit(d.primary, format, args)
}

// emit writes the optional timestamp prefix and the formatted message to w.
// The prefix does not count towards the returned length.
func (d *Dispatcher) emit(w sink.Sink, format string, args []any) (int, error) {
	if d.probe != nil {
		writePrefix(w, d.probe.Now())
	}
	return d.formatter.Format(w, format, args)
}

// writePrefix renders the timestamp into a stack buffer per adapter.
// Only the generic case hands the buffer to an interface and lets it escape.
func writePrefix(w sink.Sink, ts Timestamp) {
	switch s := w.(type) {
	case *sink.LowLevel:
		var scratch [maxTimestampPrefix]byte
		_, _ = s.Write(AppendTimestamp(scratch[:0], ts))
	case *sink.Descriptor:
		var scratch [maxTimestampPrefix]byte
		_, _ = s.Write(AppendTimestamp(scratch[:0], ts))
	case *sink.Buffered:
		if r := s.Ring(); r != nil {
			var scratch [maxTimestampPrefix]byte
			_, _ = r.Write(AppendTimestamp(scratch[:0], ts))
			return
		}
		_, _ = s.Write(AppendTimestamp(nil, ts))
	default:
		_, _ = w.Write(AppendTimestamp(nil, ts))
	}
}

// SetLogMask replaces the priority mask and returns the previous one.
// A zero mask leaves the current mask unchanged.
func (d *Dispatcher) SetLogMask(mask uint32) uint32 {
	return d.mask.swap(mask)
}

// LogMask returns the current priority mask
func (d *Dispatcher) LogMask() uint32 {
	return d.mask.Load()
}

// Kind returns the primary sink kind
func (d *Dispatcher) Kind() sink.Kind {
	return d.kind
}

// Ring returns the default buffered backend, nil unless the dispatcher
// writes to the built-in ring
func (d *Dispatcher) Ring() *sink.Ring {
	return d.ring
}

// GetConfig returns a copy of the configuration the dispatcher was built from
func (d *Dispatcher) GetConfig() *Config {
	return d.cfg.Clone()
}

// reportBinding notes non-obvious sink bindings
func (d *Dispatcher) reportBinding() {
	switch {
	case d.kind == sink.KindNone:
		d.internalLog("no sink enabled, all output is discarded\n")
	case d.fallback != nil:
		d.internalLog("lowlevel sink bound as interrupt context fallback for descriptor %d\n", d.cfg.Descriptor)
	case d.kind == sink.KindDescriptor:
		d.internalLog("descriptor sink has no interrupt context fallback, interrupt output is suppressed\n")
	}
}

// internalLog handles writing internal diagnostics to stderr, if enabled.
func (d *Dispatcher) internalLog(format string, args ...any) {
	if !d.cfg.InternalErrorsToStderr {
		return
	}

	if !strings.HasPrefix(format, "syslog: ") {
		format = "syslog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
