// FILE: example/spew/main.go
package main

import (
	"fmt"

	"github.com/lixenwraith/syslog"
	"github.com/lixenwraith/syslog/sink"
)

// Payload defines a struct for testing complex value dumps.
type Payload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Formatter Comparison ---")

	byteRecord := []byte("binary\ndata\twith\x00null")
	structRecord := Payload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	}

	for _, name := range []string{"printf", "spew"} {
		fmt.Printf("\n[%s]\n", name)
		d, err := syslog.NewBuilder().
			Sink(sink.KindDescriptor).
			FormatterName(name).
			Build()
		if err != nil {
			fmt.Printf("Failed to build dispatcher: %v\n", err)
			return
		}

		d.Syslog(syslog.LevelInfo, "Byte Record -> %v\n", byteRecord)
		d.Syslog(syslog.LevelInfo, "Struct Record -> %+v\n", structRecord)
	}

	fmt.Println("\n--- Test Complete ---")
}
