//go:build syslog_descriptor && syslog_lowlevel

package syslog

const buildLowLevelFallback = true
