package models

import (
	"strconv"
	"strings"
)

// MetricSet is the raw metric mapping submitted by the caller. Values may be
// numbers, booleans, strings, or string lists depending on how the payload was
// decoded. A MetricSet is constructed once per request and never mutated by
// the engine.
type MetricSet map[string]any

// Has reports whether the metric is present and non-nil.
func (m MetricSet) Has(name string) bool {
	v, ok := m[name]
	return ok && v != nil
}

// Float returns the metric coerced to a float64. Booleans coerce to 0/1 and
// currency-style strings ("$1,234.50") are normalized before parsing. The
// second return is false when the metric is absent or not coercible.
func (m MetricSet) Float(name string) (float64, bool) {
	v, ok := m[name]
	if !ok || v == nil {
		return 0, false
	}
	return coerceFloat(v)
}

// FloatOr returns the metric coerced to a float64, or def when absent or not
// coercible.
func (m MetricSet) FloatOr(name string, def float64) float64 {
	if f, ok := m.Float(name); ok {
		return f
	}
	return def
}

// Bool returns the metric as a boolean. Numeric values are true when non-zero.
func (m MetricSet) Bool(name string) (bool, bool) {
	v, ok := m[name]
	if !ok || v == nil {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, false
		}
		return b, true
	default:
		if f, ok := coerceFloat(v); ok {
			return f != 0, true
		}
		return false, false
	}
}

// String returns the metric as a string.
func (m MetricSet) String(name string) (string, bool) {
	v, ok := m[name]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// List returns the metric as a string list. JSON and YAML decoders produce
// []any, so elements are stringified individually.
func (m MetricSet) List(name string) ([]string, bool) {
	v, ok := m[name]
	if !ok || v == nil {
		return nil, false
	}
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(t)
		s = strings.ReplaceAll(s, "$", "")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// FeatureVector is the ordered numeric input a classifier consumes. Its
// length and ordering are fixed at model-training time.
type FeatureVector []float64
