//go:build syslog_descriptor

package syslog

// Descriptor build writes to stdout, with the low-level sink as the
// interrupt context fallback when syslog_lowlevel is also set
const (
	buildBufferedSink   = false
	buildDescriptorSink = true
	buildLowLevelSink   = buildLowLevelFallback
)
