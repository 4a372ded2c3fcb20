package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(u.Email)

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusinessf(httperr.CodeEmailTaken, "Ya existe un usuario con ese email")
		}
		return fmt.Errorf("create usuario: %w", err)
	}
	return nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByNameAndRole(
	ctx context.Context,
	name string,
	role user.Role,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("nombre = ? AND tipo_usuario = ?", name, string(role)).
		Order("id ASC").
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) ListByRole(ctx context.Context, role user.Role) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).
		Where("tipo_usuario = ?", string(role)).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) DeleteByID(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *UserGormRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		Delete(&models.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusinessf(httperr.CodeNotFound, "Usuario no encontrado")
	}
	return err
}

var _ user.Repository = (*UserGormRepository)(nil)
