package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/venturelens/venturelens/internal/models"
	"github.com/venturelens/venturelens/internal/projectconfig"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func pillarArtifact(name string, weights []float64, featureNames []string) map[string]any {
	fields := make([]map[string]any, len(featureNames))
	for i, n := range featureNames {
		fields[i] = map[string]any{"name": n, "kind": "numeric"}
	}
	return map[string]any{
		"name": name,
		"kind": "logistic",
		"feature_schema": map[string]any{
			"features": fields,
		},
		"params": map[string]any{"weights": weights, "bias": -0.2},
	}
}

// writeModelBundle lays out a complete artifact bundle under dir.
func writeModelBundle(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeJSON(t, filepath.Join(dir, "capital.model.json"),
		pillarArtifact("capital", []float64{0.4, -0.1, 0.2}, []string{"cash_on_hand_usd", "monthly_burn_usd", "runway_months"}))
	writeJSON(t, filepath.Join(dir, "advantage.model.json"),
		pillarArtifact("advantage", []float64{0.5, 0.3}, []string{"tech_differentiation_score", "switching_cost_score"}))
	writeJSON(t, filepath.Join(dir, "market.model.json"),
		pillarArtifact("market", []float64{0.2, 0.4}, []string{"tam_size_usd", "market_growth_rate_percent"}))
	writeJSON(t, filepath.Join(dir, "people.model.json"),
		pillarArtifact("people", []float64{0.3, 0.3}, []string{"domain_expertise_years_avg", "team_size_full_time"}))
	writeJSON(t, filepath.Join(dir, "meta.model.json"), map[string]any{
		"name":   "meta",
		"kind":   "logistic",
		"params": map[string]any{"weights": []float64{1.2, 0.8, 1.0, 1.0}, "bias": -2},
	})
	writeJSON(t, filepath.Join(dir, "importance.json"), map[string]any{
		"capital": []map[string]any{
			{"metric": "cash_on_hand_usd", "weight": 0.4},
			{"metric": "runway_months", "weight": 0.3},
		},
	})
	writeJSON(t, filepath.Join(dir, "metadata.json"), map[string]any{
		"model_version": "v2.1.0",
		"dataset_size":  54000,
		"success_rate":  0.64,
		"threshold":     0.304,
		"thresholds": map[string]any{
			"default":             0.304,
			"precision_optimized": 0.52,
		},
	})
}

const healthyMetricsYAML = `startup_name: acme-robotics
cash_on_hand_usd: "$1,200,000"
monthly_burn_usd: 80000
runway_months: 15
tech_differentiation_score: 7
switching_cost_score: 6
tam_size_usd: 5000000000
market_growth_rate_percent: 22
team_size_full_time: 18
`

const permissivePolicyYAML = `version: test-permissive
global_threshold: 0.1
`

const demandingPolicyYAML = `version: test-demanding
global_threshold: 0.99
`

// setupProject creates a project directory with a bundle, policy, and metrics
// file, chdirs into it, and returns the metrics path.
func setupProject(t *testing.T, policyYAML string) string {
	t.Helper()
	dir := t.TempDir()
	writeModelBundle(t, filepath.Join(dir, "models"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "policy.yaml"), []byte(policyYAML), 0o644))
	metricsPath := filepath.Join(dir, "acme.yaml")
	require.NoError(t, os.WriteFile(metricsPath, []byte(healthyMetricsYAML), 0o644))
	t.Chdir(dir)
	return metricsPath
}

func TestPredictOptions_DefaultsFromConfig(t *testing.T) {
	cfg := projectconfig.New()

	opts, err := predictOptions(cfg, false, false, "", 0, false)
	require.NoError(t, err)
	require.False(t, opts.Strict)
	require.Equal(t, "default", string(opts.ThresholdMode))
	require.Nil(t, opts.Threshold)
}

func TestPredictOptions_FlagOverrides(t *testing.T) {
	cfg := projectconfig.New()

	opts, err := predictOptions(cfg, true, true, "precision", 0.61, true)
	require.NoError(t, err)
	require.True(t, opts.Strict)
	require.Equal(t, "precision", string(opts.ThresholdMode))
	require.NotNil(t, opts.Threshold)
	require.Equal(t, 0.61, *opts.Threshold)
}

func TestPredictOptions_RejectsBadMode(t *testing.T) {
	cfg := projectconfig.New()

	_, err := predictOptions(cfg, false, false, "aggressive", 0, false)
	require.ErrorContains(t, err, "invalid threshold mode")
}

func TestPredictOptions_RejectsOutOfRangeThreshold(t *testing.T) {
	cfg := projectconfig.New()

	_, err := predictOptions(cfg, false, false, "", 1.5, true)
	require.ErrorContains(t, err, "threshold must be in (0, 1)")
}

func TestLoadMetricsFile_SanitizesCurrency(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(healthyMetricsYAML), 0o644))

	m, err := loadMetricsFile(path)
	require.NoError(t, err)

	cash, ok := m.Float("cash_on_hand_usd")
	require.True(t, ok)
	require.Equal(t, 1200000.0, cash)
}

func TestLoadMetricsFile_RejectsInvalidMetrics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runway_months: -3\n"), 0o644))

	_, err := loadMetricsFile(path)
	require.ErrorContains(t, err, "invalid metrics")
}

func TestStartupName(t *testing.T) {
	m, err := loadMetricsFileFromString(t, healthyMetricsYAML)
	require.NoError(t, err)
	require.Equal(t, "acme-robotics", startupName(m, "fallback"))
	require.Equal(t, "fallback", startupName(nil, "fallback"))
}

func loadMetricsFileFromString(t *testing.T, content string) (models.MetricSet, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return loadMetricsFile(path)
}
