package syslog

import (
	"io"
	"testing"

	"github.com/lixenwraith/syslog/sink"
)

func createBenchDispatcher(b *testing.B, builder *Builder) *Dispatcher {
	b.Helper()
	d, err := builder.Sink(sink.KindBuffered).Backend(io.Discard).Build()
	if err != nil {
		b.Fatal(err)
	}
	return d
}

// BenchmarkSyslogAdmitted benchmarks a message that passes the mask
func BenchmarkSyslogAdmitted(b *testing.B) {
	d := createBenchDispatcher(b, NewBuilder())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Syslog(LevelInfo, "benchmark message %d\n", i)
	}
}

// BenchmarkSyslogFiltered benchmarks the mask drop path
func BenchmarkSyslogFiltered(b *testing.B) {
	d := createBenchDispatcher(b, NewBuilder().MaskUpTo(LevelErr))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Syslog(LevelDebug, "benchmark message %d\n", i)
	}
}

// BenchmarkSyslogTimestamp benchmarks the prefix path with the monotonic clock
func BenchmarkSyslogTimestamp(b *testing.B) {
	d := createBenchDispatcher(b, NewBuilder().EnableTimestamp(true))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Syslog(LevelInfo, "benchmark message %d\n", i)
	}
}

// BenchmarkConcurrentSyslog benchmarks concurrent dispatch into the ring
func BenchmarkConcurrentSyslog(b *testing.B) {
	d, err := NewBuilder().Sink(sink.KindBuffered).Build()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = d.Syslog(LevelInfo, "concurrent %d\n", i)
			i++
		}
	})
}
