//go:build unix

package syslog

import "golang.org/x/sys/unix"

// MonotonicClock reads CLOCK_MONOTONIC
type MonotonicClock struct{}

// Now returns the monotonic clock reading
func (MonotonicClock) Now() (Timestamp, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}, nil
}
