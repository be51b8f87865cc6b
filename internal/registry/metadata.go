package registry

import (
	"path/filepath"

	"github.com/venturelens/venturelens/internal/models"
)

func loadMetadata(dir string) (*models.ModelMetadata, error) {
	path := filepath.Join(dir, "metadata.json")
	var meta models.ModelMetadata
	if err := readJSONArtifact(path, &meta); err != nil {
		return nil, &models.ArtifactLoadError{Path: path, Err: err}
	}
	if meta.Thresholds.Default == 0 {
		meta.Thresholds.Default = meta.Threshold
	}
	if meta.Threshold == 0 {
		meta.Threshold = meta.Thresholds.Default
	}
	return &meta, nil
}

func f(v float64) *float64 { return &v }

// fallbackMetadata is served when the metadata document failed to load, so
// the model-info surface keeps working in degraded mode.
func fallbackMetadata() *models.ModelMetadata {
	return &models.ModelMetadata{
		Version:     "v2.0.0-fallback",
		DatasetSize: 1000,
		SuccessRate: 0.65,
		Threshold:   0.5,
		Thresholds:  models.Thresholds{Default: 0.5},
		PillarMetrics: map[models.Pillar]models.Metrics{
			models.PillarCapital:   {AUC: f(0.72), Accuracy: f(0.68), CalibrationError: f(0.05)},
			models.PillarAdvantage: {AUC: f(0.68), Accuracy: f(0.65), CalibrationError: f(0.06)},
			models.PillarMarket:    {AUC: f(0.70), Accuracy: f(0.67), CalibrationError: f(0.05)},
			models.PillarPeople:    {AUC: f(0.65), Accuracy: f(0.64), CalibrationError: f(0.07)},
		},
		MetaMetrics: models.Metrics{AUC: f(0.75), Accuracy: f(0.70), CalibrationError: f(0.04)},
		Fallback:    true,
	}
}
