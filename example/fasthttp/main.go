// FILE: examples/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/syslog"
	"github.com/lixenwraith/syslog/compat"
)

func main() {
	// Create and configure the dispatcher
	cfg, err := syslog.NewConfigFromDefaults(map[string]any{
		"enable_buffered_sink":   false,
		"enable_descriptor_sink": true,
		"descriptor":             2,
		"mask_upto":              "info",
	})
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter, err := compat.NewBuilder().
		WithConfig(cfg).
		BuildFastHTTP(
			compat.WithDefaultLevel(syslog.LevelInfo),
			compat.WithFastHTTPFacility(syslog.FacilityLocal1),
			compat.WithLevelDetector(customLevelDetector),
		)
	if err != nil {
		panic(err)
	}

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) (syslog.Priority, bool) {
	// Specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return syslog.LevelWarning, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return syslog.LevelErr, true
	}

	// Use default detection
	return compat.DetectLevel(msg)
}
