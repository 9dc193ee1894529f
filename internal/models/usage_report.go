package models

// EndpointCount is one ranked row of the by-endpoint table.
type EndpointCount struct {
	Path  string
	Count int64
}

// UsageReport holds every frequency table computed over one window of
// filtered log lines. It is rebuilt from scratch on each invocation.
type UsageReport struct {
	Window      Window
	Total       int64
	Total24h    int64
	ByUser      map[string]int64
	ByEndpoint  []EndpointCount // highest counts first, capped
	ByRepo      map[string]int64
	ByService   map[string]int64
	BySourceIP  map[string]int64
	ByHour      map[string]int64 // "00".."23"
	ByStatus    map[string]int64
	ByUserAgent map[string]int64
	// FlagMatches is nil when no flag list was loaded; patterns with zero
	// matches are never present.
	FlagMatches map[string]int64
}
