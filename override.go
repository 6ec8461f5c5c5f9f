// FILE: override.go
package syslog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the configuration.
// Each override should be in the format "key=value". All overrides are
// attempted and their errors combined; the result is validated afterwards.
//
// Example:
//
//	cfg := syslog.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "enable_buffered_sink=false",
//	    "enable_descriptor_sink=true",
//	    "mask_upto=warning",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(c, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return c.Validate()
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("syslog: multiple configuration errors:")
	for i, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), "syslog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Sink selection
	case "enable_buffered_sink":
		return parseBoolField(key, value, &cfg.EnableBufferedSink)
	case "enable_descriptor_sink":
		return parseBoolField(key, value, &cfg.EnableDescriptorSink)
	case "enable_lowlevel_sink":
		return parseBoolField(key, value, &cfg.EnableLowLevelSink)

	// Formatting
	case "enable_timestamp":
		return parseBoolField(key, value, &cfg.EnableTimestamp)
	case "formatter":
		cfg.Formatter = value

	// Sink parameters
	case "descriptor":
		return parseIntField(key, value, &cfg.Descriptor)
	case "ring_size":
		return parseIntField(key, value, &cfg.RingSize)

	// Mask, accepts a level name or its number
	case "mask_upto":
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			if numVal < 0 || numVal >= numLevels {
				return fmtErrorf("mask_upto level out of range: %d", numVal)
			}
			cfg.MaskUpTo = levelNames[numVal]
		} else {
			if _, err := ParseLevel(value); err != nil {
				return fmtErrorf("invalid mask_upto value '%s': %w", value, err)
			}
			cfg.MaskUpTo = value
		}

	// Internal error handling
	case "internal_errors_to_stderr":
		return parseBoolField(key, value, &cfg.InternalErrorsToStderr)

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}

func parseBoolField(key, value string, dst *bool) error {
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
	}
	*dst = boolVal
	return nil
}

func parseIntField(key, value string, dst *int64) error {
	intVal, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmtErrorf("invalid integer value for %s '%s': %w", key, value, err)
	}
	*dst = intVal
	return nil
}
