package exercise

import (
	"fmt"
	"strconv"
)

// Config represents exercise-specific configuration. Values may arrive as
// strings from command-line overrides or as typed values from YAML, so the
// accessors coerce where they can.
type Config map[string]any

// Float reads a numeric parameter, falling back to def when absent.
func (c Config) Float(key string, def float64) (float64, error) {
	raw, ok := c[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("exercise: parameter %s: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("exercise: parameter %s: expected number, got %T", key, raw)
	}
}

// Int reads an integer parameter, falling back to def when absent.
func (c Config) Int(key string, def int) (int, error) {
	raw, ok := c[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("exercise: parameter %s: %v is not an integer", key, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("exercise: parameter %s: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("exercise: parameter %s: expected integer, got %T", key, raw)
	}
}

// String reads a string parameter, falling back to def when absent.
func (c Config) String(key, def string) (string, error) {
	raw, ok := c[key]
	if !ok {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("exercise: parameter %s: expected string, got %T", key, raw)
	}
	return s, nil
}

// Bool reads a boolean parameter, falling back to def when absent.
func (c Config) Bool(key string, def bool) (bool, error) {
	raw, ok := c[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("exercise: parameter %s: %w", key, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("exercise: parameter %s: expected bool, got %T", key, raw)
	}
}
