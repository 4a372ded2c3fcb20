package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

const (
	minPasswordLength = 6

	// bcrypt rejects longer inputs.
	maxPasswordBytes = 72
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

type RegisterUser struct {
	users domain.Repository
	audit *audit.Dispatcher

	// checkDomain verifies the email domain resolves. Nil disables it.
	checkDomain func(ctx context.Context, email string) bool
}

func NewRegisterUser(
	users domain.Repository,
	audit *audit.Dispatcher,
	checkDomain func(ctx context.Context, email string) bool,
) *RegisterUser {
	return &RegisterUser{users: users, audit: audit, checkDomain: checkDomain}
}

func (uc *RegisterUser) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "Faltan datos")
	}

	role := domain.Role(in.Role)
	if !role.Valid() {
		return nil, httperr.ErrBusinessf(
			httperr.CodeValidation,
			"tipoUsuario debe ser %s o %s", domain.RoleClient, domain.RoleBarber,
		)
	}

	if len(in.Password) < minPasswordLength {
		return nil, httperr.ErrBusinessf(
			httperr.CodeValidation,
			"La contraseña debe tener al menos %d caracteres", minPasswordLength,
		)
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, httperr.ErrBusinessf(
			httperr.CodeValidation,
			"La contraseña no puede superar los %d bytes", maxPasswordBytes,
		)
	}

	if uc.checkDomain != nil && !uc.checkDomain(ctx, in.Email) {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "El dominio del email no parece válido")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hashed),
		Role:         string(role),
	}

	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionUserRegistered,
		Entity:   "usuario",
		EntityID: &u.ID,
		Actor:    u.Email,
		Metadata: map[string]any{"tipoUsuario": u.Role},
	})

	return u, nil
}
