package webserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturelens/venturelens/internal/engine"
	"github.com/venturelens/venturelens/internal/models"
)

// stubService satisfies Service with fixed answers.
type stubService struct{}

func (stubService) Predict(context.Context, models.MetricSet, engine.Options) (*models.PredictionResult, error) {
	return &models.PredictionResult{
		PillarScores:  map[models.Pillar]float64{},
		FinalScore:    0.5,
		Label:         models.LabelPass,
		Confidence:    0.5,
		Threshold:     0.5,
		FailedPillars: []models.Pillar{},
	}, nil
}

func (stubService) Recommend(context.Context, models.MetricSet) (models.RecommendationSet, *models.PredictionResult, error) {
	return models.RecommendationSet{}, nil, nil
}

func (stubService) ModelInfo() engine.ModelInfo {
	return engine.ModelInfo{Metadata: &models.ModelMetadata{Version: "v-test"}}
}

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	return New(cfg, stubService{}).Handler()
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "ok", body["status"])
}

func TestModelInfoEndpoint(t *testing.T) {
	handler := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/model-info", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "metadata")
}

func TestPredictEndpoint(t *testing.T) {
	handler := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(`{"runway_months": 14}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var res models.PredictionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, models.LabelPass, res.Label)
}

func TestCORSDisabledByDefault(t *testing.T) {
	handler := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSEnabledWhenConfigured(t *testing.T) {
	handler := newTestHandler(t, Config{AllowedOrigins: []string{"https://dashboard.example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://dashboard.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
