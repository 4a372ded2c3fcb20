package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// Repository is the persistence collaborator for turnos.
type Repository interface {
	// -------- Create --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Read --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAll(ctx context.Context) ([]models.Appointment, error)

	ListByClient(
		ctx context.Context,
		client string,
	) ([]models.Appointment, error)

	ListByBarber(
		ctx context.Context,
		barber string,
	) ([]models.Appointment, error)

	ListByBarberBetween(
		ctx context.Context,
		barber string,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	// -------- Delete --------
	DeleteByID(
		ctx context.Context,
		id uint,
	) (bool, error)

	// DeleteFirstByClient removes the oldest appointment booked under client
	// and returns it, or nil when the client has none.
	DeleteFirstByClient(
		ctx context.Context,
		client string,
	) (*models.Appointment, error)
}
