package webserver

import (
	"net/http"

	"github.com/venturelens/venturelens/internal/webapi"
)

// Service is re-exported so callers wiring the server don't import webapi.
type Service = webapi.Service

// buildHandler sets up the API routes and the CORS wrapper.
func buildHandler(cfg Config, svc Service) http.Handler {
	mux := http.NewServeMux()
	webapi.RegisterRoutes(mux, svc)

	if len(cfg.AllowedOrigins) > 0 {
		return webapi.CORSMiddleware(mux, cfg.AllowedOrigins...)
	}
	return mux
}
