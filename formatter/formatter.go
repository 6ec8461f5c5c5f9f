// Package formatter renders printf-style messages into a byte sink.
// The dispatcher never formats anything itself, it hands the caller's
// format string and arguments to one of these.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Formatter writes format and args into w and returns the bytes produced
type Formatter interface {
	Format(w io.Writer, format string, args []any) (int, error)
}

// Func adapts a function to the Formatter interface
type Func func(w io.Writer, format string, args []any) (int, error)

// Format calls f
func (f Func) Format(w io.Writer, format string, args []any) (int, error) {
	return f(w, format, args)
}

// Printf formats with the fmt package verbs
type Printf struct{}

// Format renders through fmt.Fprintf
func (Printf) Format(w io.Writer, format string, args []any) (int, error) {
	return fmt.Fprintf(w, format, args...)
}

// Spew formats with go-spew, composite arguments under %v are expanded
// recursively instead of printed as addresses.
type Spew struct {
	cfg *spew.ConfigState
}

// NewSpew creates a spew formatter tuned for single-line log output
func NewSpew() *Spew {
	return &Spew{
		cfg: &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true, // Stable output across runs
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

// Format renders through spew's Fprintf
func (s *Spew) Format(w io.Writer, format string, args []any) (int, error) {
	return s.cfg.Fprintf(w, format, args...)
}

// ByName returns the formatter registered under name
func ByName(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "printf", "":
		return Printf{}, nil
	case "spew":
		return NewSpew(), nil
	default:
		return nil, fmt.Errorf("formatter: unknown formatter '%s' (use printf or spew)", name)
	}
}
