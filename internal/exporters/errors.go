package exporters

import (
	"fmt"

	"nexus-exporter/internal/shared/svcerrors"
)

// ExportService errors
const (
	codeInvalidWindow  = "EXP_1000"
	codeLiveLogMissing = "EXP_1001"

	codeInternalScanFailed        = "EXP_9000"
	codeInternalRenderFailed      = "EXP_9001"
	codeInternalReportStoreFailed = "EXP_9002"
)

// errInvalidWindow returns an error for a window token that does not match <digits>h.
func errInvalidWindow(token string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidWindow,
		fmt.Sprintf("invalid window %q: must be a positive hour count like 24h", token), cause)
}

// errLiveLogMissing returns an error when the live request log does not exist.
func errLiveLogMissing(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceUnavailableError(codeLiveLogMissing, "live request log is missing", cause)
}

// errInternalScanFailed returns an error when the log scan cannot complete.
func errInternalScanFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalScanFailed, fmt.Errorf("scanFailed: %w", cause))
}

// errInternalRenderFailed returns an error when the exposition document cannot be encoded.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when the artifact store rejects a save.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
