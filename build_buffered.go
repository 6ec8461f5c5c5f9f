//go:build !syslog_descriptor && !syslog_lowlevel

package syslog

// Default build routes output through the buffered kernel log sink
const (
	buildBufferedSink   = true
	buildDescriptorSink = false
	buildLowLevelSink   = false
)
