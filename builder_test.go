// FILE: lixenwraith/syslog/builder_test.go
package syslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/syslog/sink"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured dispatcher", func(t *testing.T) {
		d, err := NewBuilder().
			SinkString("descriptor").
			LowLevelFallback(true).
			Descriptor(2).
			EnableTimestamp(true).
			MaskUpToString("warning").
			FormatterName("spew").
			Build()

		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, d, "Builder.Build() should return a non-nil dispatcher")

		// Retrieve the configuration from the dispatcher to verify it was applied correctly
		cfg := d.GetConfig()
		require.NotNil(t, cfg)

		assert.Equal(t, sink.KindDescriptor, d.Kind())
		assert.True(t, cfg.LowLevelFallback())
		assert.Equal(t, int64(2), cfg.Descriptor)
		assert.True(t, cfg.EnableTimestamp)
		assert.Equal(t, "spew", cfg.Formatter)
		assert.Equal(t, LogUpTo(LevelWarning), d.LogMask())
	})

	t.Run("builder error accumulation", func(t *testing.T) {
		d, err := NewBuilder().
			MaskUpToString("invalid-level-string").
			SinkString("lowlevel"). // Not evaluated
			Build()

		require.Error(t, err, "Build should fail with an invalid level string")
		assert.Contains(t, err.Error(), "unknown level name")
		assert.Nil(t, d)
	})

	t.Run("first error wins", func(t *testing.T) {
		_, err := NewBuilder().
			SinkString("syslogd").
			Override("mask_upto=loud").
			Build()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown kind 'syslogd'")
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewBuilder().Config(nil).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration cannot be nil")
	})

	t.Run("invalid values surface at build", func(t *testing.T) {
		_, err := NewBuilder().RingSize(-4).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ring_size must be positive")
	})
}

func TestBuilder_Config(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetSink(sink.KindLowLevel, false)

	b := NewBuilder().Config(cfg)
	// The builder works on its own copy
	cfg.SetSink(sink.KindNone, false)

	d, err := b.Override("mask_upto=crit").Build()
	require.NoError(t, err)
	assert.Equal(t, sink.KindLowLevel, d.Kind())
	assert.Equal(t, LogUpTo(LevelCrit), d.LogMask())
}

func TestBuilder_LowLevelFallback(t *testing.T) {
	fallbackDispatcher := func(t *testing.T, b *Builder, rec *charRecorder, irq *IRQState) *Dispatcher {
		t.Helper()
		d, err := b.Descriptor(1).PutChar(rec.putc).InterruptProbe(irq.InInterrupt).Build()
		require.NoError(t, err)
		return d
	}

	orders := map[string]func() *Builder{
		"fallback then sink": func() *Builder {
			return NewBuilder().LowLevelFallback(true).Sink(sink.KindDescriptor)
		},
		"sink then fallback": func() *Builder {
			return NewBuilder().Sink(sink.KindDescriptor).LowLevelFallback(true)
		},
		"fallback then config": func() *Builder {
			cfg := DefaultConfig()
			cfg.SetSink(sink.KindDescriptor, false)
			return NewBuilder().LowLevelFallback(true).Config(cfg)
		},
	}

	for name, build := range orders {
		t.Run(name, func(t *testing.T) {
			var rec charRecorder
			irq := &IRQState{}
			d := fallbackDispatcher(t, build(), &rec, irq)
			assert.True(t, d.GetConfig().LowLevelFallback())

			irq.Run(func() {
				n, err := d.Syslog(LevelErr, "irq\n")
				require.NoError(t, err)
				assert.Equal(t, 4, n)
			})
			assert.Equal(t, "irq\n", rec.String())
		})
	}

	t.Run("last request wins", func(t *testing.T) {
		d, err := NewBuilder().
			LowLevelFallback(true).
			Sink(sink.KindDescriptor).
			LowLevelFallback(false).
			Build()
		require.NoError(t, err)
		assert.False(t, d.GetConfig().LowLevelFallback())
	})

	t.Run("requires descriptor sink", func(t *testing.T) {
		for _, kind := range []sink.Kind{sink.KindBuffered, sink.KindLowLevel, sink.KindNone} {
			_, err := NewBuilder().LowLevelFallback(true).Sink(kind).Build()
			require.Error(t, err, kind.String())
			assert.Contains(t, err.Error(), "requires the descriptor sink")
		}
	})

	t.Run("disabling off descriptor is harmless", func(t *testing.T) {
		d, err := NewBuilder().Sink(sink.KindBuffered).LowLevelFallback(false).Build()
		require.NoError(t, err)
		assert.Equal(t, sink.KindBuffered, d.Kind())
	})

	t.Run("build leaves the builder config untouched", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SetSink(sink.KindDescriptor, false)
		b := NewBuilder().Config(cfg).LowLevelFallback(true)
		_, err := b.Build()
		require.NoError(t, err)
		assert.False(t, b.cfg.EnableLowLevelSink)
	})
}
