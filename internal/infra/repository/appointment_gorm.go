package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

// Create inserts ap inside a transaction that first locks any overlapping
// row of the same barber. The turnos exclusion constraint backs this up.
func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clashing []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barbero = ? AND fecha < ? AND fin > ?",
				ap.Barber,
				ap.EndTime,
				ap.StartTime,
			).
			Limit(1).
			Find(&clashing).Error; err != nil {
			return err
		}

		if len(clashing) > 0 {
			return domain.ConflictError(ap.Barber)
		}

		return tx.Create(ap).Error
	})

	switch {
	case err == nil:
		return nil
	case httperr.IsExclusionConflict(err):
		return domain.ConflictError(ap.Barber)
	case isBusiness(err):
		return err
	default:
		return fmt.Errorf("create turno: %w", err)
	}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeNotFound, "No existe un turno con ese ID")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListByClient(
	ctx context.Context,
	client string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("cliente = ?", client).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListByBarber(
	ctx context.Context,
	barber string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barbero = ?", barber).
		Order("fecha ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListByBarberBetween(
	ctx context.Context,
	barber string,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barbero = ? AND fecha >= ? AND fecha < ?",
			barber, from, to,
		).
		Order("fecha ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *AppointmentGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) DeleteFirstByClient(
	ctx context.Context,
	client string,
) (*models.Appointment, error) {

	var removed *models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cliente = ?", client).
			Order("id ASC").
			First(&ap).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&models.Appointment{}, ap.ID).Error; err != nil {
			return err
		}
		removed = &ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

func isBusiness(err error) bool {
	_, ok := httperr.AsBusiness(err)
	return ok
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
