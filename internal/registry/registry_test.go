package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/venturelens/venturelens/internal/models"
)

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

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func writeBundle(t *testing.T, dir string) {
	t.Helper()
	writeJSON(t, filepath.Join(dir, "capital.model.json"),
		pillarArtifact("capital", []float64{0.4, -0.1, 0.2}, []string{"cash_on_hand_usd", "monthly_burn_usd", "runway_months"}))
	writeJSON(t, filepath.Join(dir, "advantage.model.json"),
		pillarArtifact("advantage", []float64{0.5, 0.3}, []string{"tech_differentiation_score", "switching_cost_score"}))
	writeJSON(t, filepath.Join(dir, "market.model.json"),
		pillarArtifact("market", []float64{0.2, 0.4}, []string{"tam_size_usd", "market_growth_rate_percent"}))
	writeJSON(t, filepath.Join(dir, "people.model.json"),
		pillarArtifact("people", []float64{0.3, 0.3}, []string{"founder_domain_experience_years", "team_size_full_time"}))
	writeJSON(t, filepath.Join(dir, "meta.model.json"), map[string]any{
		"name":   "meta",
		"kind":   "logistic",
		"params": map[string]any{"weights": []float64{1.2, 0.8, 1.0, 1.0}, "bias": -2},
	})
	writeJSON(t, filepath.Join(dir, "importance.json"), map[string]any{
		"capital": []map[string]any{
			{"metric": "cash_on_hand_usd", "weight": 0.4},
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

func TestOpenLoadsFullBundle(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir)

	r := Open(dir, Options{})
	snap := r.Snapshot()

	require.False(t, snap.Degraded)
	require.Empty(t, snap.Warnings)
	require.Len(t, snap.Scorers, 4)
	for _, p := range models.Pillars {
		require.False(t, snap.Scorers[p].Degraded(), "pillar %s", p)
	}
	require.False(t, snap.Combiner.Degraded())
	require.Equal(t, "v2.1.0", snap.Metadata.Version)
	require.Equal(t, 54000, snap.Metadata.DatasetSize)
	require.Equal(t, 0.52, *snap.Metadata.Thresholds.PrecisionOptimized)
	require.NotEmpty(t, snap.Importance[models.PillarCapital])
}

func TestOpenMissingPillarDegradesJustThatPillar(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "market.model.json")))

	snap := Open(dir, Options{}).Snapshot()

	require.True(t, snap.Degraded)
	require.True(t, snap.Scorers[models.PillarMarket].Degraded())
	require.False(t, snap.Scorers[models.PillarCapital].Degraded())
	require.False(t, snap.Combiner.Degraded())

	// Degraded scorer still produces a usable probability.
	p, _, err := snap.Scorers[models.PillarMarket].Score(models.MetricSet{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestOpenMissingDirectoryFullyDegrades(t *testing.T) {
	snap := Open(filepath.Join(t.TempDir(), "missing"), Options{}).Snapshot()

	require.True(t, snap.Degraded)
	for _, p := range models.Pillars {
		require.True(t, snap.Scorers[p].Degraded())
	}
	require.True(t, snap.Combiner.Degraded())
	require.True(t, snap.Metadata.Fallback)
	require.Equal(t, "v2.0.0-fallback", snap.Metadata.Version)
}

func TestOpenCorruptArtifactDegrades(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.model.json"), []byte("{nope"), 0o644))

	snap := Open(dir, Options{}).Snapshot()
	require.True(t, snap.Degraded)
	require.True(t, snap.Scorers[models.PillarPeople].Degraded())
}

func TestOpenReadsZstdArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir)

	// Re-pack the capital artifact as zstd only.
	plain := filepath.Join(dir, "capital.model.json")
	data, err := os.ReadFile(plain)
	require.NoError(t, err)
	require.NoError(t, os.Remove(plain))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	packed := enc.EncodeAll(data, nil)
	require.NoError(t, enc.Close())
	require.NoError(t, os.WriteFile(plain+".zst", packed, 0o644))

	snap := Open(dir, Options{}).Snapshot()
	require.False(t, snap.Degraded)
	require.False(t, snap.Scorers[models.PillarCapital].Degraded())
}

func TestReloadSwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir)

	r := Open(dir, Options{})
	old := r.Snapshot()
	require.Equal(t, "v2.1.0", old.Metadata.Version)

	writeJSON(t, filepath.Join(dir, "metadata.json"), map[string]any{
		"model_version": "v2.2.0",
		"dataset_size":  60000,
		"success_rate":  0.66,
		"threshold":     0.31,
	})
	r.Reload()

	require.Equal(t, "v2.2.0", r.Metadata().Version)
	// The old snapshot is untouched for in-flight readers.
	require.Equal(t, "v2.1.0", old.Metadata.Version)
}

func TestMetadataThresholdBackfill(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir)
	writeJSON(t, filepath.Join(dir, "metadata.json"), map[string]any{
		"model_version": "v2.3.0",
		"threshold":     0.42,
	})

	meta := Open(dir, Options{}).Metadata()
	require.Equal(t, 0.42, meta.Thresholds.Default)
	require.Equal(t, 0.42, meta.SelectThreshold(models.ThresholdDefault))
	// Untrained alternates fall back to the default.
	require.Equal(t, 0.42, meta.SelectThreshold(models.ThresholdPrecision))
}
