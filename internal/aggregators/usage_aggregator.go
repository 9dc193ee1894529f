package aggregators

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"nexus-exporter/internal/models"

	"github.com/mileusna/useragent"
)

// maxEndpointRows caps the by-endpoint table; only the highest counts are
// reported, ties broken by first-encountered order.
const maxEndpointRows = 50

const (
	repositoryPrefix = "/repository/"
	servicePrefix    = "/service/"
)

// UsageAggregator accumulates every frequency table of a usage report in a
// single pass over the filtered line stream. A fresh aggregator is built per
// invocation; nothing persists between scans.
//
// Field extraction is best effort: a short or malformed line still counts
// toward every table its fields can be extracted for and is skipped for the
// rest.
type UsageAggregator struct {
	total       int64
	byUser      map[string]int64
	byEndpoint  map[string]int64
	endpointSeq map[string]int // first-encounter rank for stable ties
	byRepo      map[string]int64
	byService   map[string]int64
	bySourceIP  map[string]int64
	byHour      map[string]int64
	byStatus    map[string]int64
	byUserAgent map[string]int64
	flags       []string
	flagMatches map[string]int64
}

// NewUsageAggregator builds an empty aggregator. flagPatterns may be nil,
// meaning no flag list was supplied and no flag table is produced.
func NewUsageAggregator(flagPatterns []string) *UsageAggregator {
	agg := &UsageAggregator{
		byUser:      make(map[string]int64),
		byEndpoint:  make(map[string]int64),
		endpointSeq: make(map[string]int),
		byRepo:      make(map[string]int64),
		byService:   make(map[string]int64),
		bySourceIP:  make(map[string]int64),
		byHour:      make(map[string]int64),
		byStatus:    make(map[string]int64),
		byUserAgent: make(map[string]int64),
	}
	if flagPatterns != nil {
		agg.flags = flagPatterns
		agg.flagMatches = make(map[string]int64)
	}
	return agg
}

// Consume feeds one filtered line into every table.
func (a *UsageAggregator) Consume(line string, ts time.Time) {
	a.total++
	a.byHour[fmt.Sprintf("%02d", ts.Hour())]++

	parts := strings.Fields(line)
	if len(parts) > 0 {
		a.bySourceIP[parts[0]]++
	}
	if len(parts) > 2 {
		a.byUser[parts[2]]++
	}
	if len(parts) > 8 {
		a.byStatus[parts[8]]++
	}

	if path, ok := requestPath(line); ok {
		if _, seen := a.endpointSeq[path]; !seen {
			a.endpointSeq[path] = len(a.endpointSeq)
		}
		a.byEndpoint[path]++

		if key, ok := groupKey(path, repositoryPrefix); ok {
			a.byRepo[key]++
		}
		if key, ok := groupKey(path, servicePrefix); ok {
			a.byService[key]++
		}
	}

	if agent, ok := userAgent(line); ok {
		a.byUserAgent[normalizeUserAgent(agent)]++
	}

	for _, flag := range a.flags {
		if line == flag {
			a.flagMatches[flag]++
		}
	}
}

// Report finalizes the tables into a UsageReport for the given window. The
// by-endpoint table is truncated to the highest maxEndpointRows counts.
func (a *UsageAggregator) Report(window models.Window) *models.UsageReport {
	return &models.UsageReport{
		Window:      window,
		Total:       a.total,
		ByUser:      a.byUser,
		ByEndpoint:  a.topEndpoints(),
		ByRepo:      a.byRepo,
		ByService:   a.byService,
		BySourceIP:  a.bySourceIP,
		ByHour:      a.byHour,
		ByStatus:    a.byStatus,
		ByUserAgent: a.byUserAgent,
		FlagMatches: a.flagMatches,
	}
}

// Total returns the running line count.
func (a *UsageAggregator) Total() int64 {
	return a.total
}

func (a *UsageAggregator) topEndpoints() []models.EndpointCount {
	ranked := make([]models.EndpointCount, 0, len(a.byEndpoint))
	for path, count := range a.byEndpoint {
		ranked = append(ranked, models.EndpointCount{Path: path, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return a.endpointSeq[ranked[i].Path] < a.endpointSeq[ranked[j].Path]
	})
	if len(ranked) > maxEndpointRows {
		ranked = ranked[:maxEndpointRows]
	}
	return ranked
}

// requestPath returns the URL path of the first quoted request string,
// i.e. the second space-delimited token of `"METHOD /path PROTO"`.
func requestPath(line string) (string, bool) {
	quoted := strings.Split(line, `"`)
	if len(quoted) < 2 {
		return "", false
	}
	req := strings.Fields(quoted[1])
	if len(req) < 2 {
		return "", false
	}
	return req[1], true
}

// userAgent returns the second quoted field of the line, which the request
// log format reserves for the client's user agent.
func userAgent(line string) (string, bool) {
	quoted := strings.Split(line, `"`)
	if len(quoted) < 4 {
		return "", false
	}
	agent := strings.TrimSpace(quoted[3])
	if agent == "" || agent == "-" {
		return "", false
	}
	return agent, true
}

// groupKey re-keys a path under prefix to its first two following segments,
// e.g. /repository/maven-central/org/foo -> /maven-central/org. Finer path
// detail is intentionally not aggregated.
func groupKey(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	segments := strings.Split(strings.TrimPrefix(path, prefix), "/")
	kept := make([]string, 0, 2)
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		kept = append(kept, segment)
		if len(kept) == 2 {
			break
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return "/" + strings.Join(kept, "/"), true
}

// normalizeUserAgent reduces a raw user agent to its client family, or
// returns the original string when parsing yields nothing.
func normalizeUserAgent(agent string) string {
	parsed := useragent.Parse(agent)
	if parsed.Name != "" {
		return parsed.Name
	}
	return agent
}
