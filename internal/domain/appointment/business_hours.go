package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

// BusinessHours describes when the shop takes bookings. All checks run on
// the wall clock of Location.
type BusinessHours struct {
	Location   *time.Location
	OpenHour   int
	CloseHour  int
	ClosedDays []time.Weekday
}

// DefaultBusinessHours is Monday to Saturday, 09:00 to 20:00.
func DefaultBusinessHours(loc *time.Location) BusinessHours {
	return BusinessHours{
		Location:   loc,
		OpenHour:   9,
		CloseHour:  20,
		ClosedDays: []time.Weekday{time.Sunday},
	}
}

func (h BusinessHours) loc() *time.Location {
	if h.Location == nil {
		return time.UTC
	}
	return h.Location
}

func (h BusinessHours) isClosedDay(d time.Weekday) bool {
	for _, closed := range h.ClosedDays {
		if closed == d {
			return true
		}
	}
	return false
}

// Validate checks a candidate start time. It rejects past times, closed days
// and start hours outside [OpenHour, CloseHour).
func (h BusinessHours) Validate(start, now time.Time) error {
	if start.Before(now) {
		return httperr.ErrBusinessf(httperr.CodePastTime, "No puedes reservar un turno en el pasado")
	}

	local := start.In(h.loc())

	if h.isClosedDay(local.Weekday()) {
		return httperr.ErrBusinessf(httperr.CodeClosedDay, "La peluquería no atiende los %s", weekdayName(local.Weekday()))
	}

	if hour := local.Hour(); hour < h.OpenHour || hour >= h.CloseHour {
		return httperr.ErrBusinessf(
			httperr.CodeOutsideHours,
			"El horario de atención es de %d:00 a %d:00", h.OpenHour, h.CloseHour,
		)
	}

	return nil
}

// OpeningOn returns the opening and closing instants for the day of date.
func (h BusinessHours) OpeningOn(date time.Time) (time.Time, time.Time) {
	d := date.In(h.loc())
	open := time.Date(d.Year(), d.Month(), d.Day(), h.OpenHour, 0, 0, 0, h.loc())
	close := time.Date(d.Year(), d.Month(), d.Day(), h.CloseHour, 0, 0, 0, h.loc())
	return open, close
}

var weekdayNames = [...]string{"domingos", "lunes", "martes", "miércoles", "jueves", "viernes", "sábados"}

func weekdayName(d time.Weekday) string {
	return weekdayNames[d]
}
