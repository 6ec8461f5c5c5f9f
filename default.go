// --- File: default.go ---
package syslog

import (
	"sync/atomic"
)

// Global instance for package-level functions
var defaultDispatcher atomic.Pointer[Dispatcher]

func init() {
	d, err := New(DefaultConfig())
	if err != nil {
		// The default configuration always validates
		panic(err)
	}
	defaultDispatcher.Store(d)
}

// Default returns the dispatcher used by the package-level functions
func Default() *Dispatcher {
	return defaultDispatcher.Load()
}

// SetDefault replaces the package-level dispatcher
func SetDefault(d *Dispatcher) {
	if d != nil {
		defaultDispatcher.Store(d)
	}
}

// Init builds a dispatcher from cfg and makes it the default
func Init(cfg *Config) error {
	d, err := New(cfg)
	if err != nil {
		return err
	}
	SetDefault(d)
	return nil
}

// Syslog emits a message through the default dispatcher
func Syslog(p Priority, format string, args ...any) (int, error) {
	return Default().VSyslog(p, format, args)
}

// VSyslog emits a message with a collected argument list through the default dispatcher
func VSyslog(p Priority, format string, args []any) (int, error) {
	return Default().VSyslog(p, format, args)
}

// SetLogMask replaces the default dispatcher's mask, returning the previous one
func SetLogMask(mask uint32) uint32 {
	return Default().SetLogMask(mask)
}
