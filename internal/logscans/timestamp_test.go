package logscans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineTime_ValidLine(t *testing.T) {
	t.Parallel()

	line := `192.0.2.5 - jdoe [25/Jun/2025:14:12:03 +0000] "GET /repository/maven-central/org/foo HTTP/1.1" 200 - 1234 56 "curl/8.0"`

	ts, ok := ParseLineTime(line, time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 25, 14, 12, 3, 0, time.UTC), ts)
}

func TestParseLineTime_AllMonths(t *testing.T) {
	t.Parallel()

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, mon := range months {
		line := `10.0.0.1 - admin [05/` + mon + `/2025:01:02:03 +0000] "GET / HTTP/1.1" 200`
		ts, ok := ParseLineTime(line, time.UTC)
		require.True(t, ok, "month %s should parse", mon)
		assert.Equal(t, time.Month(i+1), ts.Month())
	}
}

func TestParseLineTime_SkipsEarlierBrackets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{
			name: "bracketed user field",
			line: `192.0.2.5 - [svc-account] [25/Jun/2025:14:12:03 +0000] "GET / HTTP/1.1" 200`,
		},
		{
			name: "long garbage bracket first",
			line: `192.0.2.5 - [this-is-not-a-timestamp-token] [25/Jun/2025:14:12:03 +0000] "GET / HTTP/1.1" 200`,
		},
		{
			name: "two garbage brackets first",
			line: `[x] [y] 192.0.2.5 - jdoe [25/Jun/2025:14:12:03 +0000] "GET / HTTP/1.1" 200`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts, ok := ParseLineTime(tt.line, time.UTC)
			require.True(t, ok)
			assert.Equal(t, time.Date(2025, 6, 25, 14, 12, 3, 0, time.UTC), ts)
		})
	}
}

func TestParseLineTime_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "no bracket", line: `192.0.2.5 - jdoe 25/Jun/2025:14:12:03 "GET / HTTP/1.1" 200`},
		{name: "truncated token", line: `192.0.2.5 - jdoe [25/Jun/20`},
		{name: "bad month", line: `192.0.2.5 - jdoe [25/Foo/2025:14:12:03 +0000] "GET / HTTP/1.1" 200`},
		{name: "garbage in token", line: `192.0.2.5 - jdoe [not-a-timestamp-here00] "GET / HTTP/1.1" 200`},
		{name: "empty line", line: ``},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := ParseLineTime(tt.line, time.UTC)
			assert.False(t, ok)
		})
	}
}

func TestParseLineTime_UsesLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CET", 3600)
	line := `10.0.0.1 - admin [25/Jun/2025:14:12:03 +0100] "GET / HTTP/1.1" 200`

	ts, ok := ParseLineTime(line, loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 25, 13, 12, 3, 0, time.UTC), ts.UTC())
}
