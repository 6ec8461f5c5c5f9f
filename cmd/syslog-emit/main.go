package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/syslog"
)

// Example TOML content
var tomlContent = `
# Example syslog.toml
[syslog]
  enable_buffered_sink = false
  enable_descriptor_sink = true
  enable_lowlevel_sink = false
  enable_timestamp = true
  descriptor = 1
  mask_upto = "info"
  formatter = "printf"
`

func main() {
	configFile := pflag.StringP("config", "c", "", "TOML configuration file with a [syslog] section")
	priority := pflag.StringP("priority", "p", "user.notice", "priority as level or facility.level")
	writeExample := pflag.Bool("write-example", false, "write an example configuration to --config and exit")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] message [key=value ...]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *writeExample {
		if *configFile == "" {
			fmt.Fprintln(os.Stderr, "--write-example needs --config")
			os.Exit(2)
		}
		if err := os.WriteFile(*configFile, []byte(tomlContent), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write example config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created example config file: %s\n", *configFile)
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}
	message, overrides := args[0], args[1:]

	// --- Setup Config ---
	cfg := syslog.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = syslog.NewConfigFromFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	p, err := syslog.ParsePriority(*priority)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid priority: %v\n", err)
		os.Exit(2)
	}

	// --- Build Dispatcher ---
	d, err := syslog.NewBuilder().
		Config(cfg).
		Override(overrides...).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dispatcher: %v\n", err)
		os.Exit(1)
	}

	n, err := d.Syslog(p, "%s\n", message)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Emit failed after %d bytes: %v\n", n, err)
		os.Exit(1)
	}

	// The buffered sink keeps output in memory, show it
	if ring := d.Ring(); ring != nil {
		os.Stdout.Write(ring.Bytes())
	}
	fmt.Fprintf(os.Stderr, "%s (%s sink): %d bytes\n", p, d.Kind(), n)
}
