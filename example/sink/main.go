// FILE: main.go
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/syslog"
)

// main runs the same messages through every sink configuration.
func main() {
	fmt.Println("--- Running Sink Test Suite ---")

	// --- Scenario 1: One dispatcher per sink ---
	fmt.Println("--- SCENARIO 1: Testing sinks in isolation (new dispatcher per test) ---")
	testBufferedOnly()
	testDescriptorStdout()
	testDescriptorStderr()
	testLowLevelOnly()
	testNoOutput()

	// --- Scenario 2: Invalid combinations ---
	fmt.Println("\n--- SCENARIO 2: Testing rejected sink combinations ---")
	testRejected("buffered+descriptor",
		"enable_buffered_sink=true",
		"enable_descriptor_sink=true",
	)
	testRejected("buffered+lowlevel",
		"enable_buffered_sink=true",
		"enable_lowlevel_sink=true",
	)

	fmt.Println("\n--- Sink Test Suite Complete ---")
}

// testBufferedOnly writes into the in-memory ring and prints it afterwards.
func testBufferedOnly() {
	d := runTestPhase("1.1: Buffered (ring)",
		"enable_buffered_sink=true",
		"enable_descriptor_sink=false",
		"enable_lowlevel_sink=false",
		"ring_size=128",
	)
	fmt.Printf("  Ring contents: %q\n", d.Ring().Bytes())
}

// testDescriptorStdout writes straight to fd 1.
func testDescriptorStdout() {
	runTestPhase("1.2: Descriptor (stdout)",
		"enable_buffered_sink=false",
		"enable_descriptor_sink=true",
		"enable_lowlevel_sink=false",
		"descriptor=1",
	)
}

// testDescriptorStderr writes straight to fd 2.
func testDescriptorStderr() {
	fmt.Fprintln(os.Stderr, "\n---") // Separator for stderr output
	runTestPhase("1.3: Descriptor (stderr)",
		"enable_buffered_sink=false",
		"enable_descriptor_sink=true",
		"enable_lowlevel_sink=false",
		"descriptor=2",
	)
	fmt.Fprintln(os.Stderr, "---")
}

// testLowLevelOnly writes one character at a time to the console.
func testLowLevelOnly() {
	runTestPhase("1.4: Low-level (console putchar)",
		"enable_buffered_sink=false",
		"enable_descriptor_sink=false",
		"enable_lowlevel_sink=true",
	)
}

// testNoOutput tests a configuration where every call is a no-op.
func testNoOutput() {
	runTestPhase("1.5: No sink (calls return 0)",
		"enable_buffered_sink=false",
		"enable_descriptor_sink=false",
		"enable_lowlevel_sink=false",
	)
}

// runTestPhase builds a dispatcher from overrides and emits one message per level.
func runTestPhase(phaseName string, overrides ...string) *syslog.Dispatcher {
	fmt.Printf("\n[Phase %s]\n", phaseName)
	fmt.Println("  Config:", overrides)

	d, err := syslog.NewBuilder().
		Override(overrides...).
		EnableTimestamp(true).
		MaskUpTo(syslog.LevelNotice).
		Build()
	if err != nil {
		fmt.Printf("  ERROR: Failed to build dispatcher: %v\n", err)
		os.Exit(1)
	}

	for _, level := range []syslog.Priority{syslog.LevelErr, syslog.LevelNotice, syslog.LevelDebug} {
		n, err := d.Syslog(syslog.FacilityUser|level, "phase %q level %s\n", phaseName, level)
		fmt.Printf("  %s -> %d bytes, err=%v\n", level, n, err)
	}
	return d
}

// testRejected expects the builder to refuse overrides.
func testRejected(name string, overrides ...string) {
	_, err := syslog.NewBuilder().Override(overrides...).Build()
	if err == nil {
		fmt.Printf("  UNEXPECTED: %s was accepted\n", name)
		return
	}
	fmt.Printf("  %s rejected: %v\n", name, err)
}
