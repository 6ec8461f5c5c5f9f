// FILE: lixenwraith/syslog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/syslog"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter routes fasthttp's Printf logging through a syslog dispatcher
type FastHTTPAdapter struct {
	dispatcher    *syslog.Dispatcher
	facility      syslog.Priority
	defaultLevel  syslog.Priority
	levelDetector func(string) (syslog.Priority, bool) // Detect level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(d *syslog.Dispatcher, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		dispatcher:    d,
		facility:      syslog.FacilityDaemon,
		defaultLevel:  syslog.LevelInfo,
		levelDetector: DetectLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds nothing
func WithDefaultLevel(level syslog.Priority) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level.Level()
	}
}

// WithLevelDetector sets a custom function to detect level from message content
func WithLevelDetector(detector func(string) (syslog.Priority, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// WithFastHTTPFacility sets the facility fasthttp messages are tagged with
func WithFastHTTPFacility(facility syslog.Priority) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.facility = facility.Facility()
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}

	_, _ = a.dispatcher.Syslog(syslog.MakePriority(a.facility, level), "fasthttp: %s", ensureNewline(msg))
}

// DetectLevel guesses a level from message content
func DetectLevel(msg string) (syslog.Priority, bool) {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return syslog.LevelErr, true
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return syslog.LevelWarning, true
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return syslog.LevelDebug, true
	}

	return 0, false
}
