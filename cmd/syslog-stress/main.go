package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/syslog"
	"github.com/lixenwraith/syslog/sink"
)

const (
	totalBursts    = 100
	logsPerBurst   = 500
	maxMessageSize = 512
	numWorkers     = 64
	ringSize       = 1 << 20
)

var levels = []syslog.Priority{
	syslog.LevelDebug,
	syslog.LevelInfo,
	syslog.LevelWarning,
	syslog.LevelErr,
}

var (
	dispatcher *syslog.Dispatcher
	irq        syslog.IRQState
	emitted    atomic.Int64 // Calls that produced output
	suppressed atomic.Int64 // Calls that returned zero
	fallback   atomic.Int64 // Bytes through the interrupt fallback
)

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func record(n int) {
	if n > 0 {
		emitted.Add(1)
	} else {
		suppressed.Add(1)
	}
}

// logBurst simulates a burst of logging activity
func logBurst(burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rand.Intn(len(levels))]
		msg := generateRandomMessage(rand.Intn(maxMessageSize) + 10)
		n, _ := dispatcher.Syslog(syslog.FacilityLocal0|level, "bst=%d seq=%d %s\n", burstID, i, msg)
		record(n)
	}
}

// worker goroutine function
func worker(burstChan chan int, wg *sync.WaitGroup, completedBursts *atomic.Int64) {
	defer wg.Done()
	for burstID := range burstChan {
		logBurst(burstID)
		completed := completedBursts.Add(1)
		if completed%10 == 0 || completed == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", completed, totalBursts)
		}
	}
}

// interruptSource fires simulated interrupt handlers until stop is closed
func interruptSource(stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			irq.Run(func() {
				n, _ := dispatcher.Syslog(syslog.LevelAlert, "irq tick\n")
				record(n)
			})
		}
	}
}

func main() {
	fmt.Println("--- Syslog Dispatcher Stress Test ---")

	kind := sink.KindBuffered
	if len(os.Args) > 1 {
		var err error
		if kind, err = sink.ParseKind(os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
	}

	b := syslog.NewBuilder().
		Sink(kind).
		LowLevelFallback(kind == sink.KindDescriptor).
		RingSize(ringSize).
		EnableTimestamp(true).
		MaskUpTo(syslog.LevelInfo).
		InterruptProbe(irq.InInterrupt).
		PutChar(func(c byte) { fallback.Add(1) }).
		InternalErrorsToStderr(true)

	// Keep the terminal readable for descriptor runs
	if kind == sink.KindDescriptor {
		devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", os.DevNull, err)
			os.Exit(1)
		}
		defer devNull.Close()
		b.Descriptor(int(devNull.Fd()))
	}

	var err error
	if dispatcher, err = b.Build(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dispatcher: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting stress test: %s sink, %d workers, %d bursts, %d logs/burst.\n",
		dispatcher.Kind(), numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	// --- Setup Workers and Signal Handling ---
	burstChan := make(chan int, numWorkers)
	var wg, irqWg sync.WaitGroup
	completedBursts := atomic.Int64{}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})
	irqStop := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	irqWg.Add(1)
	go interruptSource(irqStop, &irqWg)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(burstChan, &wg, &completedBursts)
	}

	// Halfway through, widen the mask to include debug
	go func() {
		time.Sleep(50 * time.Millisecond)
		prev := dispatcher.SetLogMask(syslog.LogUpTo(syslog.LevelDebug))
		fmt.Printf("\nMask widened from %#02x\n", prev)
	}()

	// --- Run Test ---
	startTime := time.Now()
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			fmt.Println("[Signal Received] Halting burst submission.")
			goto endLoop
		}
	}
endLoop:
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	wg.Wait()
	close(irqStop)
	irqWg.Wait()
	duration := time.Since(startTime)

	fmt.Printf("\n--- Test Finished ---")
	fmt.Printf("\nCompleted %d/%d bursts in %v\n", completedBursts.Load(), totalBursts, duration.Round(time.Millisecond))
	fmt.Printf("Emitted: %d, suppressed: %d, fallback bytes: %d\n", emitted.Load(), suppressed.Load(), fallback.Load())
	if total := emitted.Load() + suppressed.Load(); total > 0 && duration.Seconds() > 0 {
		fmt.Printf("Approximate calls/sec: %.2f\n", float64(total)/duration.Seconds())
	}
	if ring := dispatcher.Ring(); ring != nil {
		fmt.Printf("Ring holds %d/%d bytes\n", ring.Len(), ring.Cap())
	}
}
