//go:build syslog_lowlevel && !syslog_descriptor

package syslog

// Low-level build sends everything through the character primitive
const (
	buildBufferedSink   = false
	buildDescriptorSink = false
	buildLowLevelSink   = true
)
