package routers

import (
	"net/http"

	"mockprep/interview/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func HealthRoutes(router chi.Router, healthHandler *handlers.HealthHandler, metricsHandler http.Handler) {
	router.Get("/healthz", healthHandler.HealthzHandler)
	router.Get("/readyz", healthHandler.ReadyzHandler)
	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}
}
