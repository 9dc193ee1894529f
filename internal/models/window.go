package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidWindow is returned when a window token does not match the
// accepted form (one or more decimal digits followed by "h" or "H").
var ErrInvalidWindow = errors.New("invalid window token")

// Window is a trailing time span in whole hours. Lines timestamped at or
// after now minus the window are eligible for aggregation.
type Window struct {
	Hours int
}

// ParseWindow parses a token like "24h" or "6H" into a Window. Exactly one
// trailing unit letter is accepted; everything before it must be digits.
func ParseWindow(token string) (Window, error) {
	if len(token) < 2 || (token[len(token)-1] != 'h' && token[len(token)-1] != 'H') {
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidWindow, token)
	}
	digits := token[:len(token)-1]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Window{}, fmt.Errorf("%w: %q", ErrInvalidWindow, token)
		}
	}
	hours, err := strconv.Atoi(digits)
	if err != nil || hours <= 0 {
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidWindow, token)
	}
	return Window{Hours: hours}, nil
}

func (w Window) String() string {
	return fmt.Sprintf("%dh", w.Hours)
}

func (w Window) Duration() time.Duration {
	return time.Duration(w.Hours) * time.Hour
}

// CutoffFrom returns the inclusive lower bound of the window relative to now.
func (w Window) CutoffFrom(now time.Time) time.Time {
	return now.Add(-w.Duration())
}
