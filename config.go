// FILE: lixenwraith/syslog/config.go
package syslog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"

	"github.com/lixenwraith/syslog/formatter"
	"github.com/lixenwraith/syslog/sink"
)

// Config holds the build-time choices of a dispatcher.
// Runtime collaborators (clock, interrupt probe, putchar, backend) are
// injected through the Builder.
type Config struct {
	// Sink selection, at most one of buffered/descriptor/lowlevel is primary
	EnableBufferedSink   bool `toml:"enable_buffered_sink"`   // Kernel log backend
	EnableDescriptorSink bool `toml:"enable_descriptor_sink"` // Raw file descriptor
	EnableLowLevelSink   bool `toml:"enable_lowlevel_sink"`   // Character primitive, or descriptor fallback

	// Formatting
	EnableTimestamp bool   `toml:"enable_timestamp"` // Prepend "[sec.usec]"
	Formatter       string `toml:"formatter"`        // "printf" or "spew"

	// Sink parameters
	Descriptor int64 `toml:"descriptor"` // Descriptor for the descriptor sink
	RingSize   int64 `toml:"ring_size"`  // Bytes held by the default buffered backend

	// Initial priority mask, every level up to and including this one
	MaskUpTo string `toml:"mask_upto"`

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write build diagnostics to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	// Sink selection follows the build tags
	EnableBufferedSink:   buildBufferedSink,
	EnableDescriptorSink: buildDescriptorSink,
	EnableLowLevelSink:   buildLowLevelSink,

	// Formatting
	EnableTimestamp: false,
	Formatter:       "printf",

	// Sink parameters
	Descriptor: sink.StdoutFD,
	RingSize:   4096,

	// All levels enabled
	MaskUpTo: "debug",

	// Internal error handling
	InternalErrorsToStderr: false,
}

// configPrefix is the key prefix used in configuration files
const configPrefix = "syslog."

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct(configPrefix, *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// A missing file leaves the defaults in place
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, configPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies values found by the loader into cfg
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Keep default
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides keyed by toml tag
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c.EnableBufferedSink && c.EnableDescriptorSink {
		return fmtErrorf("enable_buffered_sink and enable_descriptor_sink are mutually exclusive")
	}
	if c.EnableBufferedSink && c.EnableLowLevelSink {
		return fmtErrorf("enable_buffered_sink and enable_lowlevel_sink are mutually exclusive")
	}

	if c.Descriptor < 0 {
		return fmtErrorf("descriptor cannot be negative: %d", c.Descriptor)
	}

	if c.RingSize <= 0 {
		return fmtErrorf("ring_size must be positive: %d", c.RingSize)
	}

	if strings.TrimSpace(c.MaskUpTo) == "" {
		return fmtErrorf("mask_upto cannot be empty")
	}
	if _, err := ParseLevel(c.MaskUpTo); err != nil {
		return fmtErrorf("invalid mask_upto: %w", err)
	}

	if _, err := formatter.ByName(c.Formatter); err != nil {
		return fmtErrorf("invalid formatter: %w", err)
	}

	return nil
}

// PrimaryKind returns the sink all admitted output goes to
func (c *Config) PrimaryKind() sink.Kind {
	switch {
	case c.EnableBufferedSink:
		return sink.KindBuffered
	case c.EnableDescriptorSink:
		return sink.KindDescriptor
	case c.EnableLowLevelSink:
		return sink.KindLowLevel
	default:
		return sink.KindNone
	}
}

// LowLevelFallback reports whether interrupt context output on a descriptor
// build may go through the low-level sink
func (c *Config) LowLevelFallback() bool {
	return c.EnableDescriptorSink && c.EnableLowLevelSink
}

// InitialMask returns the mask a dispatcher starts with
func (c *Config) InitialMask() uint32 {
	level, err := ParseLevel(c.MaskUpTo)
	if err != nil {
		return MaskAll
	}
	return LogUpTo(level)
}

// SetSink makes kind the only primary sink, keeping a low-level fallback
// on descriptor builds when keepFallback is set
func (c *Config) SetSink(kind sink.Kind, keepFallback bool) {
	fallback := keepFallback && c.EnableLowLevelSink
	c.EnableBufferedSink = kind == sink.KindBuffered
	c.EnableDescriptorSink = kind == sink.KindDescriptor
	c.EnableLowLevelSink = kind == sink.KindLowLevel || (kind == sink.KindDescriptor && fallback)
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
