package models

// Label is the binary outcome of a prediction.
type Label string

const (
	LabelPass Label = "pass"
	LabelFail Label = "fail"
)

// ThresholdMode selects which trained threshold the policy engine compares
// the final score against.
type ThresholdMode string

const (
	ThresholdDefault   ThresholdMode = "default"
	ThresholdPrecision ThresholdMode = "precision"
	ThresholdRecall    ThresholdMode = "recall"
)

// Alert flags a notable condition on a prediction, such as a strong imbalance
// between pillar scores.
type Alert struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// PredictionResult is the complete outcome of one prediction request. It is
// constructed once and immutable afterward; the engine keeps no copy.
type PredictionResult struct {
	PillarScores       map[Pillar]float64 `json:"pillar_scores"`
	FinalScore         float64            `json:"final_score"`
	Label              Label              `json:"label"`
	Confidence         float64            `json:"confidence"`
	Threshold          float64            `json:"threshold"`
	FailedPillars      []Pillar           `json:"failed_pillars"`
	ConfidenceInterval []float64          `json:"confidence_interval,omitempty"`
	PolicyVersion      string             `json:"policy_version"`
	Alerts             []Alert            `json:"alerts,omitempty"`

	// Degraded is set when any stage fell back to heuristic scoring or the
	// built-in policy because an artifact failed to load.
	Degraded bool     `json:"degraded,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Impact is the expected effect size of acting on a recommendation.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// RecommendationItem is one ranked improvement suggestion for a metric.
type RecommendationItem struct {
	Metric         string `json:"metric"`
	Recommendation string `json:"recommendation"`
	Impact         Impact `json:"impact"`
}

// RecommendationSet groups suggestions by pillar. Every pillar key is always
// present; a pillar at or above its benchmark maps to an empty list so
// callers can distinguish "no weaknesses found" from "not evaluated".
type RecommendationSet map[Pillar][]RecommendationItem
