package renderers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"nexus-exporter/internal/models"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// ContentType is the exposition content type served alongside rendered
// documents.
const ContentType = "text/plain; version=0.0.4; charset=utf-8"

// Metric names are scoped under a project prefix so they cannot collide
// with the monitored system's own metrics endpoint.
const (
	metricRequestsTotal    = "nexus_exporter_api_requests_total"
	metricRequestsLast24h  = "nexus_exporter_api_requests_total_last_24h"
	metricByUser           = "nexus_exporter_requests_by_user"
	metricByEndpoint       = "nexus_exporter_api_requests_by_endpoint"
	metricByRepository     = "nexus_exporter_api_requests_by_repository"
	metricByService        = "nexus_exporter_api_requests_by_service"
	metricBySourceIP       = "nexus_exporter_api_requests_by_source_ip"
	metricByHour           = "nexus_exporter_api_requests_by_hour"
	metricStatusCodeTotal  = "nexus_exporter_api_status_code_total"
	metricByUserAgent      = "nexus_exporter_api_requests_by_user_agent"
	metricCustomFlagsMatch = "nexus_exporter_api_custom_flag_matches"
)

//go:generate mockgen -source=prometheus_renderer.go -destination=./mocks/prometheus_renderer_mock.go -package=mocks
type Renderer interface {
	// Render formats a usage report as Prometheus text exposition
	// (format version 0.0.4). Output is byte-identical for equal reports.
	Render(report *models.UsageReport) ([]byte, error)
}

type prometheusRenderer struct{}

func NewPrometheusRenderer() Renderer {
	return &prometheusRenderer{}
}

func (r *prometheusRenderer) Render(report *models.UsageReport) ([]byte, error) {
	window := report.Window.String()

	families := []*dto.MetricFamily{
		scalarFamily(metricRequestsTotal,
			fmt.Sprintf("Total API requests in last %s", window),
			dto.MetricType_COUNTER, float64(report.Total)),
		scalarFamily(metricRequestsLast24h,
			"Total API requests in the last 24h",
			dto.MetricType_GAUGE, float64(report.Total24h)),
		tableFamily(metricByUser,
			fmt.Sprintf("Requests by user in last %s", window),
			dto.MetricType_GAUGE, "user", sortedRows(report.ByUser)),
		tableFamily(metricByEndpoint,
			fmt.Sprintf("Requests by endpoint in last %s", window),
			dto.MetricType_GAUGE, "endpoint", rankedRows(report.ByEndpoint)),
		tableFamily(metricByRepository,
			fmt.Sprintf("Requests by repository in last %s", window),
			dto.MetricType_GAUGE, "repository", sortedRows(report.ByRepo)),
		tableFamily(metricByService,
			fmt.Sprintf("Requests by service in last %s", window),
			dto.MetricType_GAUGE, "service", sortedRows(report.ByService)),
		tableFamily(metricBySourceIP,
			fmt.Sprintf("Requests by IP in last %s", window),
			dto.MetricType_GAUGE, "ip", sortedRows(report.BySourceIP)),
		tableFamily(metricByHour,
			fmt.Sprintf("Requests by hour in last %s", window),
			dto.MetricType_GAUGE, "hour", sortedRows(report.ByHour)),
		tableFamily(metricStatusCodeTotal,
			fmt.Sprintf("Status code distribution in last %s", window),
			dto.MetricType_COUNTER, "code", sortedRows(report.ByStatus)),
		tableFamily(metricByUserAgent,
			fmt.Sprintf("Requests by user agent in last %s", window),
			dto.MetricType_GAUGE, "user_agent", sortedRows(report.ByUserAgent)),
	}

	// The flag family exists only when a flag list was loaded at all.
	if report.FlagMatches != nil {
		families = append(families, tableFamily(metricCustomFlagsMatch,
			fmt.Sprintf("Custom flag matches in last %s", window),
			dto.MetricType_GAUGE, "flag", sortedRows(report.FlagMatches)))
	}

	var buf bytes.Buffer
	for _, family := range families {
		// expfmt refuses families without metrics, but an empty table must
		// still surface its HELP/TYPE header.
		if len(family.Metric) == 0 {
			writeFamilyHeader(&buf, family)
			continue
		}
		if _, err := expfmt.MetricFamilyToText(&buf, family); err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", family.GetName(), err)
		}
	}
	return buf.Bytes(), nil
}

func writeFamilyHeader(buf *bytes.Buffer, family *dto.MetricFamily) {
	help := strings.NewReplacer("\\", `\\`, "\n", `\n`).Replace(family.GetHelp())
	fmt.Fprintf(buf, "# HELP %s %s\n", family.GetName(), help)
	fmt.Fprintf(buf, "# TYPE %s %s\n", family.GetName(), strings.ToLower(family.GetType().String()))
}

type row struct {
	value string
	count int64
}

// sortedRows orders a table by label value so repeated renders of the same
// report are byte-identical.
func sortedRows(table map[string]int64) []row {
	rows := make([]row, 0, len(table))
	for value, count := range table {
		rows = append(rows, row{value: value, count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].value < rows[j].value })
	return rows
}

// rankedRows preserves the precomputed highest-count-first endpoint order.
func rankedRows(ranked []models.EndpointCount) []row {
	rows := make([]row, 0, len(ranked))
	for _, entry := range ranked {
		rows = append(rows, row{value: entry.Path, count: entry.Count})
	}
	return rows
}

func scalarFamily(name, help string, metricType dto.MetricType, value float64) *dto.MetricFamily {
	metric := &dto.Metric{}
	if metricType == dto.MetricType_COUNTER {
		metric.Counter = &dto.Counter{Value: proto.Float64(value)}
	} else {
		metric.Gauge = &dto.Gauge{Value: proto.Float64(value)}
	}
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   metricType.Enum(),
		Metric: []*dto.Metric{metric},
	}
}

// tableFamily builds one family with a single label dimension. An empty
// table still produces the family so its HELP/TYPE header is emitted.
func tableFamily(name, help string, metricType dto.MetricType, label string, rows []row) *dto.MetricFamily {
	metrics := make([]*dto.Metric, 0, len(rows))
	for _, entry := range rows {
		metric := &dto.Metric{
			Label: []*dto.LabelPair{{
				Name:  proto.String(label),
				Value: proto.String(entry.value),
			}},
		}
		if metricType == dto.MetricType_COUNTER {
			metric.Counter = &dto.Counter{Value: proto.Float64(float64(entry.count))}
		} else {
			metric.Gauge = &dto.Gauge{Value: proto.Float64(float64(entry.count))}
		}
		metrics = append(metrics, metric)
	}
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   metricType.Enum(),
		Metric: metrics,
	}
}
