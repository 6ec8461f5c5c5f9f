// FILE: example/interrupt/main.go
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/syslog"
	"github.com/lixenwraith/syslog/sink"
)

// uart collects what the low-level fallback emits
type uart struct {
	mu  sync.Mutex
	buf []byte
}

func (u *uart) putc(c byte) {
	u.mu.Lock()
	u.buf = append(u.buf, c)
	u.mu.Unlock()
}

func run(name string, fallback bool) {
	var irq syslog.IRQState
	var serial uart

	d, err := syslog.NewBuilder().
		Sink(sink.KindDescriptor).
		LowLevelFallback(fallback).
		EnableTimestamp(true).
		MaskUpTo(syslog.LevelWarning).
		InterruptProbe(irq.InInterrupt).
		PutChar(serial.putc).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dispatcher: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n--- %s ---\n", name)
	n, _ := d.Syslog(syslog.LevelErr, "task context: disk error on sda\n")
	fmt.Printf("task context err: %d bytes\n", n)

	n, _ = d.Syslog(syslog.LevelDebug, "task context: below the mask\n")
	fmt.Printf("task context debug: %d bytes\n", n)

	// A timer interrupt fires and its handler logs at debug
	done := make(chan struct{})
	time.AfterFunc(10*time.Millisecond, func() {
		irq.Run(func() {
			n, _ := d.Syslog(syslog.LevelDebug, "irq: timer tick\n")
			fmt.Printf("interrupt context debug: %d bytes\n", n)
		})
		close(done)
	})
	<-done

	serial.mu.Lock()
	fmt.Printf("serial line captured: %q\n", serial.buf)
	serial.mu.Unlock()
}

func main() {
	fmt.Println("--- Interrupt Context Demo ---")
	run("descriptor sink, no fallback (interrupt output suppressed)", false)
	run("descriptor sink with low-level fallback (interrupt output unfiltered)", true)
}
