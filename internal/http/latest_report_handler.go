package http

import (
	"errors"
	"net/http"

	"nexus-exporter/internal/renderers"
	"nexus-exporter/internal/shared/svcerrors"
	"nexus-exporter/internal/stores"
)

const codeNoCachedReport = "RPT_1000"

type latestReportHandler struct {
	reportStore stores.MetricsReportStore
}

// NewLatestReportHandler serves the document most recently written by the
// scheduled exporter, without triggering a log scan.
func NewLatestReportHandler(reportStore stores.MetricsReportStore) AppHttpHandler {
	return &latestReportHandler{
		reportStore: reportStore,
	}
}

func (h *latestReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	document, err := h.reportStore.Latest(r.Context())
	if err != nil {
		if errors.Is(err, stores.ErrNoReport) {
			return svcerrors.NewResourceUnavailableError(codeNoCachedReport, "no cached report available yet", err)
		}
		return err
	}

	w.Header().Set("Content-Type", renderers.ContentType)
	_, err = w.Write(document)
	return err
}
