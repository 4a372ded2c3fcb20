package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

type DeleteUser struct {
	users domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(users domain.Repository, audit *audit.Dispatcher) *DeleteUser {
	return &DeleteUser{users: users, audit: audit}
}

func (uc *DeleteUser) ByID(ctx context.Context, id uint, actor string) error {
	deleted, err := uc.users.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusinessf(httperr.CodeNotFound, "No existe un usuario con ese ID")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionUserDeleted,
		Entity:   "usuario",
		EntityID: &id,
		Actor:    actor,
	})
	return nil
}

func (uc *DeleteUser) ByEmail(ctx context.Context, email, actor string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	deleted, err := uc.users.DeleteByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusinessf(httperr.CodeNotFound, "No existe un usuario con ese email")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionUserDeleted,
		Entity:   "usuario",
		Actor:    actor,
		Metadata: map[string]any{"email": email},
	})
	return nil
}
