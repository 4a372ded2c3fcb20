package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-turnos/internal/auth"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

type Login struct {
	users  domain.Repository
	tokens *auth.Tokens
}

func NewLogin(users domain.Repository, tokens *auth.Tokens) *Login {
	return &Login{users: users, tokens: tokens}
}

// Execute verifies the credentials and returns a signed session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (uc *Login) Execute(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", httperr.ErrBusinessf(httperr.CodeValidation, "Faltan datos")
	}

	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return "", invalidCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", invalidCredentials()
	}

	return uc.tokens.Issue(u)
}

func invalidCredentials() error {
	return httperr.ErrBusinessf(httperr.CodeInvalidCredentials, "Error de password o email")
}
