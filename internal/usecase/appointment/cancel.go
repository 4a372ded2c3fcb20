package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ByID removes the turno with id.
func (uc *CancelAppointment) ByID(ctx context.Context, id uint, actor string) error {
	deleted, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusinessf(httperr.CodeNotFound, "No existe un turno con ese ID")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionTurnoCancelled,
		Entity:   "turno",
		EntityID: &id,
		Actor:    actor,
	})
	return nil
}

// ByClientName removes only the first turno booked under client.
func (uc *CancelAppointment) ByClientName(
	ctx context.Context,
	client string,
	actor string,
) (*models.Appointment, error) {

	ap, err := uc.repo.DeleteFirstByClient(ctx, client)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusinessf(httperr.CodeNotFound, "No existe un turno para %s", client)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionTurnoCancelled,
		Entity:   "turno",
		EntityID: &ap.ID,
		Actor:    actor,
		Metadata: map[string]any{"cliente": client},
	})
	return ap, nil
}
