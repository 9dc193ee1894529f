package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow_ValidTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		hours int
	}{
		{token: "1h", hours: 1},
		{token: "6h", hours: 6},
		{token: "24h", hours: 24},
		{token: "48H", hours: 48},
		{token: "168h", hours: 168},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			window, err := ParseWindow(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.hours, window.Hours)
		})
	}
}

func TestParseWindow_InvalidTokens(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"h",
		"24",
		"24m",
		"-1h",
		"+1h",
		"1.5h",
		"abch",
		"12hh",
		"24Hh",
		"24hH",
		"12HH",
		"h24",
		" 24h",
	}

	for _, token := range tests {
		token := token
		t.Run("token "+token, func(t *testing.T) {
			t.Parallel()
			_, err := ParseWindow(token)
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestWindow_CutoffFrom(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 25, 14, 30, 0, 0, time.UTC)

	window, err := ParseWindow("6h")
	require.NoError(t, err)

	cutoff := window.CutoffFrom(now)
	assert.Equal(t, time.Date(2025, 6, 25, 8, 30, 0, 0, time.UTC), cutoff)
}

func TestWindow_String(t *testing.T) {
	t.Parallel()

	window, err := ParseWindow("48H")
	require.NoError(t, err)
	assert.Equal(t, "48h", window.String())
	assert.Equal(t, 48*time.Hour, window.Duration())
}
