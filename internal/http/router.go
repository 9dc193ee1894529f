package http

import (
	"net/http"

	"nexus-exporter/internal/exporters"
	"nexus-exporter/internal/shared/loggers"
	"nexus-exporter/internal/shared/metrics"
	"nexus-exporter/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(exportService exporters.ExportService, reportStore stores.MetricsReportStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	exportMetricsHandler := NewExportMetricsHandler(exportService)
	latestReportHandler := NewLatestReportHandler(reportStore)

	// Routes. The usage document lives on /metrics; the service's own
	// operational metrics are kept on a separate internal path so the two
	// exposition payloads can never mix.
	router.Get("/", rootHandler)
	router.Get("/metrics", errorHandlingAdapter(exportMetricsHandler))
	router.Get("/metrics/latest", errorHandlingAdapter(latestReportHandler))
	router.Get("/internal/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Nexus Metrics Exporter\n"))
}
