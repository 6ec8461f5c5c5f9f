// FILE: utility_test.go
package syslog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/syslog/sink"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"key=value", "key", "value", false},
		{" key = value ", "key", "value", false},
		{"key=value=with=equals", "key", "value=with=equals", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
		{"key=", "key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("test error: %s", "details")
	assert.Error(t, err)
	assert.Equal(t, "syslog: test error: details", err.Error())

	// Already prefixed
	err = fmtErrorf("syslog: already prefixed")
	assert.Equal(t, "syslog: already prefixed", err.Error())
}

func TestApplyOverride(t *testing.T) {
	t.Run("switch to descriptor with fallback", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride(
			"enable_buffered_sink=false",
			"enable_descriptor_sink=true",
			"enable_lowlevel_sink=true",
			"descriptor=2",
			"enable_timestamp=true",
			"formatter=spew",
		)
		require.NoError(t, err)

		assert.Equal(t, sink.KindDescriptor, cfg.PrimaryKind())
		assert.True(t, cfg.LowLevelFallback())
		assert.Equal(t, int64(2), cfg.Descriptor)
		assert.True(t, cfg.EnableTimestamp)
		assert.Equal(t, "spew", cfg.Formatter)
	})

	t.Run("mask by name or number", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.ApplyOverride("mask_upto=err"))
		assert.Equal(t, LogUpTo(LevelErr), cfg.InitialMask())

		require.NoError(t, cfg.ApplyOverride("mask_upto=5"))
		assert.Equal(t, "notice", cfg.MaskUpTo)

		err := cfg.ApplyOverride("mask_upto=8")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("errors are combined", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride("ring_size=lots", "no_such_key=1", "garbage")
		require.Error(t, err)

		msg := err.Error()
		assert.True(t, strings.HasPrefix(msg, "syslog: multiple configuration errors:"))
		assert.Contains(t, msg, "1. invalid integer value for ring_size")
		assert.Contains(t, msg, "2. unknown configuration key 'no_such_key'")
		assert.Contains(t, msg, "3. invalid format in override string 'garbage'")
	})

	t.Run("result is validated", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride("enable_buffered_sink=true", "enable_descriptor_sink=true")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("bad boolean", func(t *testing.T) {
		err := DefaultConfig().ApplyOverride("enable_timestamp=sometimes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid boolean value for enable_timestamp")
	})
}
