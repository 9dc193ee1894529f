package logscans

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrLiveLogMissing is returned when the live log file does not exist. The
// live log is always expected to be present; rotated archives are not.
var ErrLiveLogMissing = errors.New("live log missing")

// LogFileRef identifies one candidate log file discovered for a scan.
type LogFileRef struct {
	Path string
	Gzip bool
	Live bool
	Day  time.Time // zero for the live log
}

// Enumerator discovers the rotated archives and the live log that can hold
// lines inside a window. Archives are named <prefix>YYYY-MM-DD.log with an
// optional .gz suffix.
type Enumerator struct {
	dir           string
	archivePrefix string
	liveName      string
}

func NewEnumerator(dir, archivePrefix, liveName string) *Enumerator {
	return &Enumerator{dir: dir, archivePrefix: archivePrefix, liveName: liveName}
}

// Enumerate returns, in chronological order, the archived files for each
// calendar day in [cutoff day, today) followed by the live log. Missing
// archived days are skipped silently; rotation gaps are normal. A missing
// live log is an error.
func (e *Enumerator) Enumerate(cutoff, now time.Time) ([]LogFileRef, error) {
	var refs []LogFileRef

	day := startOfDay(cutoff)
	today := startOfDay(now)
	for day.Before(today) {
		base := filepath.Join(e.dir, e.archivePrefix+day.Format("2006-01-02")+".log")
		for _, candidate := range []LogFileRef{
			{Path: base + ".gz", Gzip: true, Day: day},
			{Path: base, Day: day},
		} {
			if _, err := os.Stat(candidate.Path); err == nil {
				refs = append(refs, candidate)
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	livePath := filepath.Join(e.dir, e.liveName)
	if _, err := os.Stat(livePath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLiveLogMissing, livePath)
		}
		return nil, err
	}
	refs = append(refs, LogFileRef{Path: livePath, Live: true})

	return refs, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
