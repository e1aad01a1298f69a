package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-01T10:00:00.5Z", time.Date(2024, 1, 1, 10, 0, 0, 500000000, time.UTC)},
		{"2024-01-01T10:00:00.123Z", time.Date(2024, 1, 1, 10, 0, 0, 123000000, time.UTC)},
		{"2024-01-01T10:00:00.123456789+00:00", time.Date(2024, 1, 1, 10, 0, 0, 123456000, time.UTC)},
		{"2024-01-01T10:00:00Z", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01T10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01 10:00:00.25+00", time.Date(2024, 1, 1, 10, 0, 0, 250000000, time.UTC)},
		{"2024-01-01T12:30:00.1+02:00", time.Date(2024, 1, 1, 10, 30, 0, 100000000, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		require.NoError(t, err, tc.in)
		require.True(t, tc.want.Equal(got), "%s: got %s", tc.in, got)
	}
}

func TestParseTimestamp_PadsShortFraction(t *testing.T) {
	short, err := ParseTimestamp("2023-01-01T12:00:00.1226+00:00")
	require.NoError(t, err)
	padded, err := ParseTimestamp("2023-01-01T12:00:00.122600+00:00")
	require.NoError(t, err)
	require.True(t, padded.Equal(short))
	require.Equal(t, 122600000, short.Nanosecond())
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2024-13-01T10:00:00Z", "2024-01-01T10:00:00.5 PST"} {
		_, err := ParseTimestamp(in)
		require.Error(t, err, in)
	}
}

func TestParseTimestamp_RoundTripsStampLayout(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 891000, time.UTC)
	got, err := ParseTimestamp(now.Format(StampLayout))
	require.NoError(t, err)
	require.True(t, now.Equal(got))
}
