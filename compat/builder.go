package compat

import (
	"fmt"

	"github.com/lixenwraith/syslog"
)

// Builder creates framework logger adapters for gnet and fasthttp.
// It can use an existing *syslog.Dispatcher or build one from a *syslog.Config.
type Builder struct {
	dispatcher *syslog.Dispatcher
	cfg        *syslog.Config
	err        error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithDispatcher specifies an existing dispatcher to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithDispatcher(d *syslog.Dispatcher) *Builder {
	if d == nil {
		b.err = fmt.Errorf("syslog/compat: provided dispatcher cannot be nil")
		return b
	}
	b.dispatcher = d
	return b
}

// WithConfig provides a configuration for a new dispatcher.
// If neither WithDispatcher nor WithConfig is used, the package default
// dispatcher is used.
func (b *Builder) WithConfig(cfg *syslog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getDispatcher resolves the dispatcher to be used, creating one if necessary
func (b *Builder) getDispatcher() (*syslog.Dispatcher, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.dispatcher != nil {
		return b.dispatcher, nil
	}

	if b.cfg == nil {
		b.dispatcher = syslog.Default()
		return b.dispatcher, nil
	}

	d, err := syslog.New(b.cfg)
	if err != nil {
		return nil, err
	}

	// Cache for subsequent builds with this builder
	b.dispatcher = d
	return d, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	d, err := b.getDispatcher()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(d, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	d, err := b.getDispatcher()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(d, opts...), nil
}

// GetDispatcher returns the underlying dispatcher, resolving it if needed
func (b *Builder) GetDispatcher() (*syslog.Dispatcher, error) {
	return b.getDispatcher()
}

// ensureNewline terminates a framework message format, the dispatcher
// writes plain text and adds no framing of its own
func ensureNewline(format string) string {
	if len(format) == 0 || format[len(format)-1] != '\n' {
		return format + "\n"
	}
	return format
}
