package user

import (
	"context"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type ListUsers struct {
	users domain.Repository
}

func NewListUsers(users domain.Repository) *ListUsers {
	return &ListUsers{users: users}
}

func (uc *ListUsers) Barbers(ctx context.Context) ([]models.User, error) {
	return uc.users.ListByRole(ctx, domain.RoleBarber)
}

func (uc *ListUsers) Clients(ctx context.Context) ([]models.User, error) {
	return uc.users.ListByRole(ctx, domain.RoleClient)
}
