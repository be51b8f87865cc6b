package models

// Metrics holds standard binary-classification performance numbers for one
// trained model. All fields are optional; absent values marshal as null.
type Metrics struct {
	AUC              *float64 `json:"auc,omitempty"`
	Accuracy         *float64 `json:"accuracy,omitempty"`
	Precision        *float64 `json:"precision,omitempty"`
	Recall           *float64 `json:"recall,omitempty"`
	F1               *float64 `json:"f1,omitempty"`
	CalibrationError *float64 `json:"calibration_error,omitempty"`
}

// Thresholds holds the trained decision thresholds. Default is always set;
// the optimized alternates are present when the training pipeline produced
// them.
type Thresholds struct {
	Default            float64  `json:"default"`
	PrecisionOptimized *float64 `json:"precision_optimized,omitempty"`
	RecallOptimized    *float64 `json:"recall_optimized,omitempty"`
}

// ModelMetadata describes the loaded artifact bundle. It is read once at
// startup and returned as a fixed snapshot for the life of the process.
type ModelMetadata struct {
	Version       string             `json:"model_version"`
	DatasetSize   int                `json:"dataset_size"`
	SuccessRate   float64            `json:"success_rate"`
	Threshold     float64            `json:"threshold"`
	Thresholds    Thresholds         `json:"thresholds"`
	PillarMetrics map[Pillar]Metrics `json:"pillar_metrics"`
	MetaMetrics   Metrics            `json:"meta_metrics"`

	// Fallback is set when the metadata document could not be loaded and
	// built-in defaults are being served instead.
	Fallback bool `json:"fallback,omitempty"`
}

// SelectThreshold returns the threshold for the given mode, falling back to
// the default when the requested alternate was not trained.
func (m *ModelMetadata) SelectThreshold(mode ThresholdMode) float64 {
	switch mode {
	case ThresholdPrecision:
		if m.Thresholds.PrecisionOptimized != nil {
			return *m.Thresholds.PrecisionOptimized
		}
	case ThresholdRecall:
		if m.Thresholds.RecallOptimized != nil {
			return *m.Thresholds.RecallOptimized
		}
	}
	if m.Thresholds.Default > 0 {
		return m.Thresholds.Default
	}
	return m.Threshold
}
