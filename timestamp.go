package syslog

import (
	"errors"
	"strconv"
)

// ErrClockUnavailable is returned by clocks that cannot be read on this platform
var ErrClockUnavailable = errors.New("syslog: clock unavailable")

// Timestamp is a monotonic time value, the zero value is the degraded timestamp
type Timestamp struct {
	Sec  int64
	Nsec int64
}

// Clock reads a monotonic time source
type Clock interface {
	Now() (Timestamp, error)
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() (Timestamp, error)

// Now calls f
func (f ClockFunc) Now() (Timestamp, error) {
	return f()
}

// TimestampProbe acquires timestamps on a best-effort basis
type TimestampProbe struct {
	ready func() bool
	clock Clock
}

// NewTimestampProbe creates a probe over clock, gated by ready.
// A nil ready means the timer hardware is always considered up.
func NewTimestampProbe(clock Clock, ready func() bool) *TimestampProbe {
	return &TimestampProbe{ready: ready, clock: clock}
}

// Now returns the current time or the zero timestamp if the timer is not
// ready yet or the clock read fails.
func (tp *TimestampProbe) Now() Timestamp {
	if tp == nil || tp.clock == nil {
		return Timestamp{}
	}
	if tp.ready != nil && !tp.ready() {
		return Timestamp{}
	}
	ts, err := tp.clock.Now()
	if err != nil {
		return Timestamp{}
	}
	return ts
}

// AppendTimestamp appends the "[sec.usec]" prefix for ts to buf
func AppendTimestamp(buf []byte, ts Timestamp) []byte {
	sec := ts.Sec
	if sec < 0 {
		sec = 0
	}
	buf = append(buf, '[')
	buf = strconv.AppendInt(buf, sec, 10)
	buf = append(buf, '.')

	usec := ts.Nsec / 1000
	if usec < 0 {
		usec = 0
	}
	if usec >= 1_000_000 {
		// Out of range nanoseconds print in full, as the C formatter would
		buf = strconv.AppendInt(buf, usec, 10)
		return append(buf, ']')
	}
	var digits [microDigits]byte
	for i := microDigits - 1; i >= 0; i-- {
		digits[i] = byte('0' + usec%10)
		usec /= 10
	}
	buf = append(buf, digits[:]...)
	return append(buf, ']')
}
