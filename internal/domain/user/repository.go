package user

import (
	"context"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByNameAndRole returns the first user named name with role, or a
	// not_found business error.
	FindByNameAndRole(ctx context.Context, name string, role Role) (*models.User, error)

	ListByRole(ctx context.Context, role Role) ([]models.User, error)

	DeleteByID(ctx context.Context, id uint) (bool, error)
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}
