package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReformatISODate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-11-20T00:00:00Z", "2026-11-20"},
		{"2026-11-20T00:00:00.000Z", "2026-11-20"},
		{"2026-11-20T03:00:00-03:00", "2026-11-20"},
		{"2026-11-20T10:15:00", "2026-11-20"},
		{"2026-11-20", "2026-11-20"},
	}

	for _, tt := range tests {
		got, err := ReformatISODate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ReformatISODate("20/11/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, "2026-02-28", FormatDate(d))

	_, err = ParseDate("2026-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("00:00"))
	assert.True(t, ValidClock("23:59"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("9:30"))
	assert.False(t, ValidClock("09:30:00"))
}

func TestLocation_Fallback(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
	assert.NotNil(t, Location("Mars/Olympus"))
	assert.Equal(t, "UTC", Location("UTC").String())
}
