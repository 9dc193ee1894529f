package exporters

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"nexus-exporter/internal/shared/loggers"
	"nexus-exporter/internal/shared/metrics"
	"nexus-exporter/internal/shared/svcerrors"
	"nexus-exporter/internal/shared/ulid"
	"nexus-exporter/internal/stores"
)

// ScheduledExporter periodically regenerates the default-window exposition
// document into the report store, so scrapes of the cached artifact never
// pay for a log scan.
//
//go:generate mockgen -source=scheduled_exporter.go -destination=./mocks/scheduled_exporter_mock.go -package=mocks
type ScheduledExporter interface {
	Start(ctx context.Context)
	Stop()
}

type scheduledExporter struct {
	exportService ExportService
	reportStore   stores.MetricsReportStore
	interval      time.Duration

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewScheduledExporter(exportService ExportService, reportStore stores.MetricsReportStore, interval time.Duration, logger loggers.Logger) ScheduledExporter {
	return &scheduledExporter{
		exportService: exportService,
		reportStore:   reportStore,
		interval:      interval,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start launches the refresh loop. An interval of zero disables the
// scheduler entirely.
func (exporter *scheduledExporter) Start(ctx context.Context) {
	if exporter.interval <= 0 {
		return
	}
	exporter.wg.Add(1)
	go func() {
		defer exporter.wg.Done()

		exporter.run(ctx)
	}()
}

// Stop waits for the refresh loop to exit (best called during app shutdown).
func (exporter *scheduledExporter) Stop() {
	exporter.stopOnce.Do(func() { close(exporter.stopCh) })
	exporter.wg.Wait()
}

func (exporter *scheduledExporter) run(ctx context.Context) {
	ticker := time.NewTicker(exporter.interval)
	defer ticker.Stop()

	exporter.exportOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-exporter.stopCh:
			return
		case <-ticker.C:
			exporter.exportOnce(ctx)
		}
	}
}

func (exporter *scheduledExporter) exportOnce(ctx context.Context) {
	// Recover so one bad refresh cannot kill the loop.
	defer func() {
		if p := recover(); p != nil {
			exporter.logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("scheduled export panic recovered: %v", p)

			var panicErr error
			if err, ok := p.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", p)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricScheduledRunTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	runCtx := exporter.logger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	// Empty token: the service applies its configured default window.
	document, err := exporter.exportService.Export(runCtx, "")
	if err != nil {
		exporter.recordFailure(err, "scheduled export failed")
		return
	}

	if err := exporter.reportStore.Save(runCtx, document); err != nil {
		exporter.recordFailure(errInternalReportStoreFailed(err), "scheduled export could not persist report")
		return
	}

	metricScheduledRunTotal.WithLabelValues(metrics.ValueNoError).Inc()
}

func (exporter *scheduledExporter) recordFailure(err error, msg string) {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	exporter.logger.Warn().
		Err(svcErr.Cause).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Msg(msg)
	metricScheduledRunTotal.WithLabelValues(svcErr.Code).Inc()
}
