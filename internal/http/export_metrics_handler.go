package http

import (
	"net/http"

	"nexus-exporter/internal/exporters"
	"nexus-exporter/internal/renderers"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type exportMetricsHandler struct {
	exportService exporters.ExportService
}

func NewExportMetricsHandler(exportService exporters.ExportService) AppHttpHandler {
	return &exportMetricsHandler{
		exportService: exportService,
	}
}

// Handle processes GET /metrics requests. The optional window query
// parameter selects the trailing span to aggregate; its absence falls back
// to the configured default window.
func (h *exportMetricsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	document, err := h.exportService.Export(r.Context(), windowParam(r))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", renderers.ContentType)
	_, err = w.Write(document)
	return err
}
