package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricSetFloat(t *testing.T) {
	m := MetricSet{
		"runway":   12,
		"mrr":      "$45,000.50",
		"flag":     true,
		"empty":    "",
		"words":    "plenty",
		"explicit": nil,
	}

	tests := []struct {
		name string
		key  string
		want float64
		ok   bool
	}{
		{"int", "runway", 12, true},
		{"currency string", "mrr", 45000.50, true},
		{"bool coerces to 1", "flag", 1, true},
		{"empty string", "empty", 0, false},
		{"non-numeric string", "words", 0, false},
		{"explicit nil", "explicit", 0, false},
		{"absent", "missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Float(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetricSetFloatOr(t *testing.T) {
	m := MetricSet{"a": 3.5}

	assert.Equal(t, 3.5, m.FloatOr("a", 9))
	assert.Equal(t, 9.0, m.FloatOr("b", 9))
}

func TestMetricSetBool(t *testing.T) {
	m := MetricSet{"yes": true, "num": 2, "zero": 0, "str": "true", "bad": "maybe"}

	b, ok := m.Bool("yes")
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = m.Bool("num")
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = m.Bool("zero")
	assert.True(t, ok)
	assert.False(t, b)

	b, ok = m.Bool("str")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = m.Bool("bad")
	assert.False(t, ok)
}

func TestMetricSetList(t *testing.T) {
	m := MetricSet{
		"typed":   []string{"a", "b"},
		"decoded": []any{"c", "d", 5},
		"scalar":  "x",
	}

	list, ok := m.List("typed")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, list)

	list, ok = m.List("decoded")
	require.True(t, ok)
	assert.Equal(t, []string{"c", "d"}, list)

	_, ok = m.List("scalar")
	assert.False(t, ok)
}

func TestParsePillar(t *testing.T) {
	p, err := ParsePillar(" Capital ")
	require.NoError(t, err)
	assert.Equal(t, PillarCapital, p)

	_, err = ParsePillar("finance")
	assert.ErrorContains(t, err, "invalid pillar")
}

func TestSelectThreshold(t *testing.T) {
	prec := 0.52
	md := &ModelMetadata{
		Threshold:  0.3,
		Thresholds: Thresholds{Default: 0.304, PrecisionOptimized: &prec},
	}

	assert.Equal(t, 0.304, md.SelectThreshold(ThresholdDefault))
	assert.Equal(t, 0.52, md.SelectThreshold(ThresholdPrecision))
	// Untrained alternate falls back to the default.
	assert.Equal(t, 0.304, md.SelectThreshold(ThresholdRecall))
}

func TestSelectThresholdLegacyField(t *testing.T) {
	md := &ModelMetadata{Threshold: 0.3}
	assert.Equal(t, 0.3, md.SelectThreshold(ThresholdDefault))
}
