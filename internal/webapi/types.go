package webapi

import (
	"github.com/venturelens/venturelens/internal/models"
)

// RecommendResponse pairs the generated recommendations with the prediction
// they were derived from.
type RecommendResponse struct {
	Recommendations models.RecommendationSet `json:"recommendations"`
	Prediction      *models.PredictionResult `json:"prediction"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned for errors. Details carries per-field schema
// violations when input validation failed.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    int      `json:"code"`
	Details []string `json:"details,omitempty"`
}
