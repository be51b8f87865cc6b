// Package webapi exposes the prediction engine over a small REST surface:
// predict, recommend, model-info and health.
package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/venturelens/venturelens/internal/engine"
	"github.com/venturelens/venturelens/internal/models"
	"github.com/venturelens/venturelens/internal/validation"
)

// Version is reported by the health endpoint. The CLI entrypoint overwrites
// it with the binary's build version.
var Version = "dev"

// maxBodyBytes caps request bodies; metric sets are small documents.
const maxBodyBytes = 1 << 20

// Service is the engine surface the API exposes.
type Service interface {
	Predict(ctx context.Context, m models.MetricSet, opts engine.Options) (*models.PredictionResult, error)
	Recommend(ctx context.Context, m models.MetricSet) (models.RecommendationSet, *models.PredictionResult, error)
	ModelInfo() engine.ModelInfo
}

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct {
	svc Service
}

// NewHandlers creates a new Handlers around the given service.
func NewHandlers(svc Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandleModelInfo returns metadata for the loaded model bundle and policy.
func (h *Handlers) HandleModelInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ModelInfo())
}

// HandlePredict scores the metric set in the request body. Decision options
// ride on query parameters: strict=true, threshold_mode=precision|recall.
func (h *Handlers) HandlePredict(w http.ResponseWriter, r *http.Request) {
	m, ok := h.readMetrics(w, r)
	if !ok {
		return
	}

	opts, ok := predictOptions(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Predict(r.Context(), m, opts)
	if err != nil {
		writePredictError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleRecommend generates improvement suggestions for the metric set in
// the request body.
func (h *Handlers) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	m, ok := h.readMetrics(w, r)
	if !ok {
		return
	}

	recs, res, err := h.svc.Recommend(r.Context(), m)
	if err != nil {
		writePredictError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RecommendResponse{
		Recommendations: recs,
		Prediction:      res,
	})
}

// readMetrics reads, schema-validates and sanitizes the request body. On
// failure it writes the error response and returns ok=false.
func (h *Handlers) readMetrics(w http.ResponseWriter, r *http.Request) (models.MetricSet, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body: "+err.Error())
		return nil, false
	}

	if errs := validation.ValidateMetricsBytes(body); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "metric set failed validation",
			Code:    http.StatusUnprocessableEntity,
			Details: errs,
		})
		return nil, false
	}

	var m models.MetricSet
	if err := json.Unmarshal(body, &m); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return validation.SanitizeMetrics(m), true
}

func predictOptions(w http.ResponseWriter, r *http.Request) (engine.Options, bool) {
	opts := engine.Options{
		Strict: r.URL.Query().Get("strict") == "true",
	}
	switch mode := r.URL.Query().Get("threshold_mode"); mode {
	case "", string(models.ThresholdDefault):
	case string(models.ThresholdPrecision), string(models.ThresholdRecall):
		opts.ThresholdMode = models.ThresholdMode(mode)
	default:
		writeError(w, http.StatusBadRequest, "threshold_mode must be default, precision or recall")
		return opts, false
	}
	return opts, true
}

func writePredictError(w http.ResponseWriter, err error) {
	var (
		valErr   *models.ValidationError
		shapeErr *models.SchemaMismatchError
	)
	switch {
	case errors.As(err, &valErr):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &shapeErr):
		writeError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request canceled")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// RegisterRoutes registers all web API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, svc Service) {
	h := NewHandlers(svc)
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/model-info", h.HandleModelInfo)
	mux.HandleFunc("POST /api/predict", h.HandlePredict)
	mux.HandleFunc("POST /api/recommend", h.HandleRecommend)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
