package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	exportermocks "nexus-exporter/internal/exporters/mocks"
	"nexus-exporter/internal/shared/svcerrors"
	storemocks "nexus-exporter/internal/stores/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouter_RootBanner(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(exportermocks.NewMockExportService(ctrl), storemocks.NewMockMetricsReportStore(ctrl), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Nexus Metrics Exporter\n", rr.Body.String())
}

func TestRouter_MetricsErrorResponse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExportService := exportermocks.NewMockExportService(ctrl)
	mockExportService.EXPECT().
		Export(gomock.Any(), "7d").
		Return(nil, svcerrors.NewInvalidArgumentError("EXP_1000", "invalid window", nil))

	router := NewRouter(mockExportService, storemocks.NewMockMetricsReportStore(ctrl), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/metrics?window=7d", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "EXP_1000", response.ErrorCode)
	assert.Equal(t, "invalid_argument", response.ErrorCategory)
	assert.NotEmpty(t, response.RequestID, "middleware assigns a request id")
}
