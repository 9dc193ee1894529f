package logscans

import (
	"strings"
	"time"
)

// timestampLayout matches the bracketed token of a request log line,
// e.g. [25/Jun/2025:14:12:03 +0000] up to the space before the offset.
const timestampLayout = "02/Jan/2006:15:04:05"

// ParseLineTime extracts the bracketed timestamp of a log line and returns
// it as an absolute instant in loc. Every '[' is tried until one opens a
// parsable token, so bracketed text in earlier fields does not hide the
// timestamp. The boolean is false when no parsable timestamp is present;
// such lines are excluded from any window.
func ParseLineTime(line string, loc *time.Location) (time.Time, bool) {
	for offset := 0; ; {
		idx := strings.IndexByte(line[offset:], '[')
		if idx < 0 {
			return time.Time{}, false
		}
		start := offset + idx + 1
		if len(line) < start+len(timestampLayout) {
			return time.Time{}, false
		}
		token := line[start : start+len(timestampLayout)]
		if ts, err := time.ParseInLocation(timestampLayout, token, loc); err == nil {
			return ts, true
		}
		offset = start
	}
}
