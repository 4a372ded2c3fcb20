package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type UserStore struct {
	mu     sync.RWMutex
	items  []models.User
	nextID uint
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

func (s *UserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if strings.EqualFold(existing.Email, u.Email) {
			return httperr.ErrBusinessf(httperr.CodeEmailTaken, "Ya existe un usuario con ese email")
		}
	}

	u.ID = s.nextID
	s.nextID++

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	s.items = append(s.items, *u)
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id uint) (*models.User, error) {
	return s.find(func(u models.User) bool { return u.ID == id })
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return s.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *UserStore) FindByNameAndRole(_ context.Context, name string, role user.Role) (*models.User, error) {
	return s.find(func(u models.User) bool { return u.Name == name && u.Role == string(role) })
}

func (s *UserStore) ListByRole(_ context.Context, role user.Role) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0)
	for _, u := range s.items {
		if u.Role == string(role) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *UserStore) DeleteByID(_ context.Context, id uint) (bool, error) {
	return s.deleteFirst(func(u models.User) bool { return u.ID == id }), nil
}

func (s *UserStore) DeleteByEmail(_ context.Context, email string) (bool, error) {
	return s.deleteFirst(func(u models.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (s *UserStore) find(match func(models.User) bool) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.items {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, httperr.ErrBusinessf(httperr.CodeNotFound, "Usuario no encontrado")
}

func (s *UserStore) deleteFirst(match func(models.User) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.items {
		if match(u) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

var _ user.Repository = (*UserStore)(nil)
