package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
	assert.False(t, IsValid(""))
}

func TestParseStart(t *testing.T) {
	loc := Location(DefaultTimezone)
	want := time.Date(2026, 10, 15, 10, 0, 0, 0, loc)

	for _, in := range []string{
		"2026-10-15T10:00",
		"2026-10-15T10:00:00",
		"2026-10-15 10:00",
		"2026-10-15 10:00:00",
		"2026-10-15T13:00:00Z",
		"2026-10-15T10:00:00-03:00",
	} {
		t.Run(in, func(t *testing.T) {
			got, err := ParseStart(in, loc)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseStart("15/10/2026", loc)
	assert.Error(t, err)
}

func TestParseStart_NilLocationIsUTC(t *testing.T) {
	got, err := ParseStart("2026-10-15T10:00", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseDate(t *testing.T) {
	loc := Location(DefaultTimezone)
	got, err := ParseDate("2026-10-15", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, loc), got)
}
