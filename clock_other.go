//go:build !unix

package syslog

// MonotonicClock has no backing source on this platform
type MonotonicClock struct{}

// Now always fails, the probe degrades to the zero timestamp
func (MonotonicClock) Now() (Timestamp, error) {
	return Timestamp{}, ErrClockUnavailable
}
