package flaglists

import (
	"os"
	"strings"
)

// Load reads the flag-pattern file at path: one literal full log line per
// row, blank rows ignored. It returns nil when path is empty or the file
// does not exist, which disables flag metrics entirely. A present but empty
// file returns an empty, non-nil slice so an empty flag table is still
// emitted.
//
// The file is re-read on every invocation so edits take effect without a
// restart.
func Load(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	patterns := []string{}
	for _, row := range strings.Split(string(data), "\n") {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		patterns = append(patterns, row)
	}
	return patterns, nil
}
