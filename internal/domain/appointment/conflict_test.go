package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

var base = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func existingAt(barber string, offset time.Duration, minutes int) models.Appointment {
	return models.Appointment{
		ID:              1,
		Barber:          barber,
		StartTime:       base.Add(offset),
		DurationMinutes: minutes,
	}
}

func TestHasConflict(t *testing.T) {
	// Existing: Agustin 10:00-10:30.
	existing := []models.Appointment{existingAt("Agustin", 0, 30)}

	tests := []struct {
		name     string
		barber   string
		start    time.Duration
		duration time.Duration
		want     bool
	}{
		{"same start", "Agustin", 0, 30 * time.Minute, true},
		{"starts inside", "Agustin", 15 * time.Minute, 30 * time.Minute, true},
		{"ends inside", "Agustin", -15 * time.Minute, 30 * time.Minute, true},
		{"encloses", "Agustin", -15 * time.Minute, 60 * time.Minute, true},
		{"enclosed", "Agustin", 5 * time.Minute, 10 * time.Minute, true},
		{"back to back after", "Agustin", 30 * time.Minute, 30 * time.Minute, false},
		{"back to back before", "Agustin", -20 * time.Minute, 20 * time.Minute, false},
		{"other barber", "Carlos", 0, 30 * time.Minute, false},
		{"well after", "Agustin", 2 * time.Hour, 45 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasConflict(tt.barber, base.Add(tt.start), tt.duration, existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasConflict_DefaultsExistingDuration(t *testing.T) {
	existing := []models.Appointment{existingAt("Agustin", 0, 0)}

	assert.True(t, HasConflict("Agustin", base.Add(59*time.Minute), 20*time.Minute, existing))
	assert.False(t, HasConflict("Agustin", base.Add(60*time.Minute), 20*time.Minute, existing))
}

func TestHasConflict_SkipsZeroStart(t *testing.T) {
	existing := []models.Appointment{{Barber: "Agustin", DurationMinutes: 30}}
	assert.False(t, HasConflict("Agustin", time.Time{}, 30*time.Minute, existing))
}

func TestHasConflict_EmptySchedule(t *testing.T) {
	assert.False(t, HasConflict("Agustin", base, 30*time.Minute, nil))
}

func TestFindConflict_ReturnsFirstHit(t *testing.T) {
	first := existingAt("Agustin", 0, 30)
	first.ID = 7
	second := existingAt("Agustin", 15*time.Minute, 30)
	second.ID = 8

	got := FindConflict("Agustin", base.Add(10*time.Minute), 30*time.Minute, []models.Appointment{first, second})
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.ID)
}

func TestConflictError(t *testing.T) {
	err := ConflictError("Agustin")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSchedulingConflict))
	assert.Contains(t, err.Error(), "Agustin")
}
