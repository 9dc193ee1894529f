package exporters

import (
	"nexus-exporter/internal/shared/metrics"
)

var (
	metricExportTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricExportDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "run_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)

	metricScheduledRunTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
