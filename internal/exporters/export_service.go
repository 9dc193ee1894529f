package exporters

import (
	"context"
	"errors"
	"time"

	"nexus-exporter/internal/aggregators"
	"nexus-exporter/internal/flaglists"
	"nexus-exporter/internal/logscans"
	"nexus-exporter/internal/models"
	"nexus-exporter/internal/renderers"
	"nexus-exporter/internal/shared/loggers"
	"nexus-exporter/internal/shared/metrics"
	"nexus-exporter/internal/shared/svcerrors"
)

// ExportOptions carries the invocation-independent settings of the export
// service. They are plain values injected at construction; the service holds
// no mutable state between invocations.
type ExportOptions struct {
	DefaultWindow models.Window
	FlagFile      string
	ScanTimeout   time.Duration
	Location      *time.Location
	Now           func() time.Time // defaults to time.Now
}

//go:generate mockgen -source=export_service.go -destination=./mocks/export_service_mock.go -package=mocks
type ExportService interface {
	// Export computes the usage document for the given window token. An
	// empty token selects the configured default window. The returned bytes
	// are a complete Prometheus exposition document; on error no document
	// is produced.
	Export(ctx context.Context, windowToken string) ([]byte, error)
}

type exportService struct {
	enumerator *logscans.Enumerator
	scanner    *logscans.Scanner
	renderer   renderers.Renderer
	opts       ExportOptions
}

func NewExportService(enumerator *logscans.Enumerator, scanner *logscans.Scanner, renderer renderers.Renderer, opts ExportOptions) ExportService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &exportService{
		enumerator: enumerator,
		scanner:    scanner,
		renderer:   renderer,
		opts:       opts,
	}
}

func (s *exportService) Export(ctx context.Context, windowToken string) ([]byte, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	window := s.opts.DefaultWindow
	if windowToken != "" {
		parsed, err := models.ParseWindow(windowToken)
		if err != nil {
			svcErr := errInvalidWindow(windowToken, err)
			metricExportTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		window = parsed
	}
	logger.Debug().Str(loggers.FieldWindow, window.String()).Msg("started usage export")

	// One timeout covers the whole invocation; expiry fails this call only.
	ctx, cancel := context.WithTimeout(ctx, s.opts.ScanTimeout)
	defer cancel()

	report, err := s.aggregateWindow(ctx, window)
	if err != nil {
		svcErr := classifyScanError(err)
		metricExportTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	// The trailing-24h total is reported regardless of the requested
	// window; reuse the main pass when the window already is 24h.
	if window.Hours == 24 {
		report.Total24h = report.Total
	} else {
		total24h, err := s.countWindow(ctx, models.Window{Hours: 24})
		if err != nil {
			svcErr := classifyScanError(err)
			metricExportTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		report.Total24h = total24h
	}

	document, err := s.renderer.Render(report)
	if err != nil {
		svcErr := errInternalRenderFailed(err)
		metricExportTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricExportTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricExportDuration.WithLabelValues(metrics.ValueNoError).Observe(time.Since(start).Seconds())
	logger.Debug().
		Str(loggers.FieldWindow, window.String()).
		Int64("lines", report.Total).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("usage export completed")
	return document, nil
}

// aggregateWindow runs the full pipeline for one window: enumerate files,
// stream their in-window lines once, and fill every table of the report.
func (s *exportService) aggregateWindow(ctx context.Context, window models.Window) (*models.UsageReport, error) {
	now := s.opts.Now().In(s.opts.Location)
	cutoff := window.CutoffFrom(now)

	refs, err := s.enumerator.Enumerate(cutoff, now)
	if err != nil {
		return nil, err
	}

	flags, err := flaglists.Load(s.opts.FlagFile)
	if err != nil {
		return nil, err
	}

	aggregator := aggregators.NewUsageAggregator(flags)
	if err := s.scanner.Scan(ctx, refs, cutoff, aggregator.Consume); err != nil {
		return nil, err
	}
	return aggregator.Report(window), nil
}

// countWindow is a count-only pass used for the companion 24h total.
func (s *exportService) countWindow(ctx context.Context, window models.Window) (int64, error) {
	now := s.opts.Now().In(s.opts.Location)
	cutoff := window.CutoffFrom(now)

	refs, err := s.enumerator.Enumerate(cutoff, now)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := s.scanner.Scan(ctx, refs, cutoff, func(string, time.Time) { total++ }); err != nil {
		return 0, err
	}
	return total, nil
}

func classifyScanError(err error) *svcerrors.ServiceError {
	if errors.Is(err, logscans.ErrLiveLogMissing) {
		return errLiveLogMissing(err)
	}
	return errInternalScanFailed(err)
}
