package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/syslog"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter routes gnet's logging.Logger calls through a syslog dispatcher
type GnetAdapter struct {
	dispatcher   *syslog.Dispatcher
	facility     syslog.Priority
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(d *syslog.Dispatcher, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		dispatcher: d,
		facility:   syslog.FacilityDaemon,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetFacility sets the facility gnet messages are tagged with
func WithGnetFacility(facility syslog.Priority) GnetOption {
	return func(a *GnetAdapter) {
		a.facility = facility.Facility()
	}
}

// Debugf logs at debug level
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.log(syslog.LevelDebug, format, args)
}

// Infof logs at info level
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.log(syslog.LevelInfo, format, args)
}

// Warnf logs at warning level
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.log(syslog.LevelWarning, format, args)
}

// Errorf logs at err level
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.log(syslog.LevelErr, format, args)
}

// Fatalf logs at crit level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	a.log(syslog.LevelCrit, format, args)

	if a.fatalHandler != nil {
		a.fatalHandler(fmt.Sprintf(format, args...))
	}
}

func (a *GnetAdapter) log(level syslog.Priority, format string, args []any) {
	_, _ = a.dispatcher.VSyslog(syslog.MakePriority(a.facility, level), "gnet: "+ensureNewline(format), args)
}
