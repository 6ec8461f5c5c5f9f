// FILE: example/reconfig/main.go
package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/syslog"
)

// Simulate rapid mask changes while a writer logs constantly
func main() {
	var attempted, written atomic.Int64

	d, err := syslog.NewBuilder().Override("ring_size=65536").Build()
	if err != nil {
		fmt.Printf("Build error: %v\n", err)
		return
	}

	// Log something constantly
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			n, _ := d.Syslog(syslog.Priority(i%8), "Test log %d\n", i)
			attempted.Add(1)
			if n > 0 {
				written.Add(1)
			}
			time.Sleep(100 * time.Microsecond)
		}
	}()

	// Cycle the mask through every threshold rapidly
	for i := 0; i < 10; i++ {
		level := syslog.Priority(i % 8)
		prev := d.SetLogMask(syslog.LogUpTo(level))
		fmt.Printf("mask %#04x -> up to %s\n", prev, level)
		time.Sleep(10 * time.Millisecond)
	}

	close(stop)
	<-done

	// Zero only reads the mask back
	fmt.Printf("final mask: %#04x\n", d.SetLogMask(0))
	fmt.Printf("attempted: %d, written: %d, ring bytes: %d\n",
		attempted.Load(), written.Load(), d.Ring().Len())
}
