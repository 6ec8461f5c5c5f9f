//go:build unix

package sink

import "golang.org/x/sys/unix"

// consoleFD is where ConsolePutChar sends characters
const consoleFD = 2

func writeFD(fd int, p []byte) (int, error) {
	return unix.Write(fd, p)
}

// ConsolePutChar writes c to the process console (stderr) without buffering.
// Errors are dropped, there is nobody to report them to.
func ConsolePutChar(c byte) {
	b := [1]byte{c}
	_, _ = unix.Write(consoleFD, b[:])
}
