//go:build !unix

package sink

import "os"

func writeFD(fd int, p []byte) (int, error) {
	switch fd {
	case 1:
		return os.Stdout.Write(p)
	case 2:
		return os.Stderr.Write(p)
	default:
		return 0, os.ErrInvalid
	}
}

// ConsolePutChar writes c to stderr
func ConsolePutChar(c byte) {
	b := [1]byte{c}
	_, _ = os.Stderr.Write(b[:])
}
