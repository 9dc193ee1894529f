package logscans

import (
	"context"
	"time"

	"nexus-exporter/internal/shared/loggers"
)

// ctxCheckInterval is how many lines are processed between context checks.
const ctxCheckInterval = 4096

// LineVisitor receives each line inside the window together with its parsed
// timestamp, in enumeration then intra-file order.
type LineVisitor func(line string, ts time.Time)

// Scanner streams the lines of a set of log files through a visitor,
// keeping only lines timestamped at or after the cutoff (inclusive).
//
// Failures on archived files are not fatal: an unreadable or corrupt
// archive is logged at warn level and its remaining lines are dropped,
// matching the expectation that one bad rotation must not abort a scan.
// Only the live log is required to open.
type Scanner struct {
	location *time.Location
}

func NewScanner(location *time.Location) *Scanner {
	return &Scanner{location: location}
}

func (s *Scanner) Scan(ctx context.Context, refs []LogFileRef, cutoff time.Time, visit LineVisitor) error {
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.scanFile(ctx, ref, cutoff, visit); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) scanFile(ctx context.Context, ref LogFileRef, cutoff time.Time, visit LineVisitor) error {
	logger := loggers.Ctx(ctx)

	reader, err := openLines(ref)
	if err != nil {
		if ref.Live {
			return err
		}
		logger.Warn().Err(err).Str(loggers.FieldLogFile, ref.Path).Msg("skipping unreadable archive")
		return nil
	}
	defer reader.Close()

	lines := 0
	for {
		line, ok := reader.Next()
		if !ok {
			break
		}
		lines++
		if lines%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		ts, ok := ParseLineTime(line, s.location)
		if !ok || ts.Before(cutoff) {
			continue
		}
		visit(line, ts)
	}

	if err := reader.Err(); err != nil {
		// Truncated gzip content lands here; drop the file's remainder and
		// keep the invocation alive.
		logger.Warn().Err(err).Str(loggers.FieldLogFile, ref.Path).Msg("log file ended with a decode error")
	}
	return nil
}
