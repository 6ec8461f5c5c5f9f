// FILE: lixenwraith/syslog/config_test.go
package syslog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/syslog/sink"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, buildBufferedSink, cfg.EnableBufferedSink)
	assert.Equal(t, buildDescriptorSink, cfg.EnableDescriptorSink)
	assert.Equal(t, buildLowLevelSink, cfg.EnableLowLevelSink)
	assert.False(t, cfg.EnableTimestamp)
	assert.Equal(t, "printf", cfg.Formatter)
	assert.Equal(t, int64(1), cfg.Descriptor)
	assert.Equal(t, int64(4096), cfg.RingSize)
	assert.Equal(t, "debug", cfg.MaskUpTo)
	assert.Equal(t, MaskAll, cfg.InitialMask())
	assert.NoError(t, cfg.Validate())
}

func TestConfigClone(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.MaskUpTo = "err"
	cfg1.Descriptor = 2

	cfg2 := cfg1.Clone()

	// Verify deep copy
	assert.Equal(t, cfg1.MaskUpTo, cfg2.MaskUpTo)
	assert.Equal(t, cfg1.Descriptor, cfg2.Descriptor)

	// Modify original
	cfg1.MaskUpTo = "info"

	// Verify clone unchanged
	assert.Equal(t, "err", cfg2.MaskUpTo)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:      "valid config",
			modify:    func(c *Config) {},
			wantError: "",
		},
		{
			name: "no sink",
			modify: func(c *Config) {
				c.SetSink(sink.KindNone, false)
			},
			wantError: "",
		},
		{
			name: "descriptor with lowlevel fallback",
			modify: func(c *Config) {
				c.EnableBufferedSink = false
				c.EnableDescriptorSink = true
				c.EnableLowLevelSink = true
			},
			wantError: "",
		},
		{
			name: "buffered and descriptor",
			modify: func(c *Config) {
				c.EnableBufferedSink = true
				c.EnableDescriptorSink = true
			},
			wantError: "mutually exclusive",
		},
		{
			name: "buffered and lowlevel",
			modify: func(c *Config) {
				c.EnableBufferedSink = true
				c.EnableDescriptorSink = false
				c.EnableLowLevelSink = true
			},
			wantError: "enable_lowlevel_sink are mutually exclusive",
		},
		{
			name:      "negative descriptor",
			modify:    func(c *Config) { c.Descriptor = -1 },
			wantError: "descriptor cannot be negative",
		},
		{
			name:      "zero ring size",
			modify:    func(c *Config) { c.RingSize = 0 },
			wantError: "ring_size must be positive",
		},
		{
			name:      "empty mask",
			modify:    func(c *Config) { c.MaskUpTo = " " },
			wantError: "mask_upto cannot be empty",
		},
		{
			name:      "invalid mask",
			modify:    func(c *Config) { c.MaskUpTo = "loud" },
			wantError: "invalid mask_upto",
		},
		{
			name:      "invalid formatter",
			modify:    func(c *Config) { c.Formatter = "json" },
			wantError: "invalid formatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestConfigSinkSelection(t *testing.T) {
	cfg := DefaultConfig()

	cfg.SetSink(sink.KindDescriptor, false)
	assert.Equal(t, sink.KindDescriptor, cfg.PrimaryKind())
	assert.False(t, cfg.LowLevelFallback())

	cfg.EnableLowLevelSink = true
	assert.Equal(t, sink.KindDescriptor, cfg.PrimaryKind(), "descriptor outranks lowlevel")
	assert.True(t, cfg.LowLevelFallback())

	cfg.SetSink(sink.KindDescriptor, true)
	assert.True(t, cfg.LowLevelFallback(), "fallback kept")

	cfg.SetSink(sink.KindLowLevel, true)
	assert.Equal(t, sink.KindLowLevel, cfg.PrimaryKind())
	assert.False(t, cfg.LowLevelFallback())

	cfg.SetSink(sink.KindBuffered, true)
	assert.Equal(t, sink.KindBuffered, cfg.PrimaryKind())
	assert.False(t, cfg.EnableLowLevelSink)

	cfg.SetSink(sink.KindNone, false)
	assert.Equal(t, sink.KindNone, cfg.PrimaryKind())
}

func TestNewConfigFromFile(t *testing.T) {
	t.Run("values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "syslog.toml")
		content := `
[syslog]
enable_buffered_sink = false
enable_descriptor_sink = true
enable_lowlevel_sink = true
enable_timestamp = true
descriptor = 2
mask_upto = "warning"
formatter = "spew"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := NewConfigFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, sink.KindDescriptor, cfg.PrimaryKind())
		assert.True(t, cfg.LowLevelFallback())
		assert.True(t, cfg.EnableTimestamp)
		assert.Equal(t, int64(2), cfg.Descriptor)
		assert.Equal(t, LogUpTo(LevelWarning), cfg.InitialMask())
		assert.Equal(t, "spew", cfg.Formatter)
		assert.Equal(t, int64(4096), cfg.RingSize, "unset keys keep defaults")
	})

	t.Run("missing file keeps defaults", func(t *testing.T) {
		cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[syslog]\nring_size = 0\n"), 0644))

		_, err := NewConfigFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ring_size")
	})
}

func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"enable_buffered_sink":   false,
		"enable_descriptor_sink": false,
		"enable_lowlevel_sink":   true,
		"ring_size":              8192,
		"mask_upto":              "notice",
	})
	require.NoError(t, err)
	assert.Equal(t, sink.KindLowLevel, cfg.PrimaryKind())
	assert.Equal(t, int64(8192), cfg.RingSize)
	assert.Equal(t, LogUpTo(LevelNotice), cfg.InitialMask())

	_, err = NewConfigFromDefaults(map[string]any{"rotation": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")

	_, err = NewConfigFromDefaults(map[string]any{"ring_size": "big"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected int64")
}
