package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// DefaultExistingDuration is assumed for stored appointments without a
// recorded duration.
const DefaultExistingDuration = 60 * time.Minute

// FindConflict returns the first appointment of barber that overlaps the
// candidate [start, start+duration). Appointments without a start time are
// skipped.
func FindConflict(
	barber string,
	start time.Time,
	duration time.Duration,
	existing []models.Appointment,
) *models.Appointment {

	candidateEnd := start.Add(duration)

	for i := range existing {
		ap := &existing[i]
		if ap.Barber != barber || ap.StartTime.IsZero() {
			continue
		}

		existingDuration := time.Duration(ap.DurationMinutes) * time.Minute
		if existingDuration <= 0 {
			existingDuration = DefaultExistingDuration
		}
		existingStart := ap.StartTime
		existingEnd := existingStart.Add(existingDuration)

		// candidate starts inside [existingStart, existingEnd)
		startsInside := !start.Before(existingStart) && start.Before(existingEnd)
		// candidate ends inside (existingStart, existingEnd]
		endsInside := candidateEnd.After(existingStart) && !candidateEnd.After(existingEnd)
		// candidate encloses the existing one
		encloses := !start.After(existingStart) && !candidateEnd.Before(existingEnd)

		if startsInside || endsInside || encloses {
			return ap
		}
	}

	return nil
}

// HasConflict reports whether the candidate overlaps any appointment of barber.
func HasConflict(
	barber string,
	start time.Time,
	duration time.Duration,
	existing []models.Appointment,
) bool {
	return FindConflict(barber, start, duration, existing) != nil
}

// ConflictError is the scheduling_conflict error reported for barber.
func ConflictError(barber string) error {
	return httperr.ErrBusinessf(
		httperr.CodeSchedulingConflict,
		"El barbero %s ya tiene un turno a esa hora. Por favor elige otro horario.", barber,
	)
}
