package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// ListAppointments serves the read accessors. Empty results are empty
// slices, never nil.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) All(ctx context.Context) ([]models.Appointment, error) {
	apps, err := uc.repo.ListAll(ctx)
	return orEmpty(apps), err
}

// ByClient matches the client name exactly.
func (uc *ListAppointments) ByClient(ctx context.Context, client string) ([]models.Appointment, error) {
	if strings.TrimSpace(client) == "" {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "Falta el nombre del cliente")
	}
	apps, err := uc.repo.ListByClient(ctx, client)
	return orEmpty(apps), err
}

// ByBarber is the barber's agenda ordered by start time.
func (uc *ListAppointments) ByBarber(ctx context.Context, barber string) ([]models.Appointment, error) {
	apps, err := uc.repo.ListByBarber(ctx, barber)
	return orEmpty(apps), err
}

func (uc *ListAppointments) ByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.GetByID(ctx, id)
}

func orEmpty(apps []models.Appointment) []models.Appointment {
	if apps == nil {
		return []models.Appointment{}
	}
	return apps
}
