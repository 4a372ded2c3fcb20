package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

// GetAvailability lists the free slots of a barber for one day, stepping by
// the duration of the requested type.
type GetAvailability struct {
	repo  domain.Repository
	users user.Repository
	hours domain.BusinessHours
	now   func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	users user.Repository,
	hours domain.BusinessHours,
) *GetAvailability {
	return &GetAvailability{repo: repo, users: users, hours: hours, now: time.Now}
}

func (uc *GetAvailability) WithClock(now func() time.Time) *GetAvailability {
	uc.now = now
	return uc
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	entry, ok := domain.Lookup(in.Type)
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeUnknownType, "No existe el tipo de turno %q", string(in.Type))
	}

	if _, err := uc.users.FindByNameAndRole(ctx, in.Barber, user.RoleBarber); err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeUnknownBarber, "No existe el barbero %s", in.Barber)
		}
		return nil, err
	}

	dayStart, dayEnd := uc.hours.OpeningOn(in.Date)
	slots := []domain.TimeSlot{}

	// Look back far enough to catch a turno that started before opening.
	appointments, err := uc.repo.ListByBarberBetween(
		ctx,
		in.Barber,
		dayStart.Add(-24*time.Hour),
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(entry.DurationMinutes) * time.Minute
	now := uc.now()

	// A turno may start up to the closing hour; only the start is bounded.
	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(slotDuration) {
		if uc.hours.Validate(cur, now) != nil {
			continue
		}
		if domain.HasConflict(in.Barber, cur, slotDuration, appointments) {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start: cur.Format("15:04"),
			End:   cur.Add(slotDuration).Format("15:04"),
		})
	}

	return slots, nil
}
