package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/lock"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	Client    string
	Barber    string
	Type      string
	StartTime string
	Services  string

	// Actor is the authenticated user, recorded in the audit log.
	Actor string
}

// ======================================================
// USE CASE
// ======================================================

const lockTimeout = 5 * time.Second

type BookAppointment struct {
	repo   domain.Repository
	users  user.Repository
	locker lock.Locker
	hours  domain.BusinessHours
	audit  *audit.Dispatcher
	now    func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	users user.Repository,
	locker lock.Locker,
	hours domain.BusinessHours,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		users:  users,
		locker: locker,
		hours:  hours,
		audit:  audit,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for the past-time check.
func (uc *BookAppointment) WithClock(now func() time.Time) *BookAppointment {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	in.Client = strings.TrimSpace(in.Client)
	in.Barber = strings.TrimSpace(in.Barber)
	in.Type = strings.TrimSpace(in.Type)
	in.StartTime = strings.TrimSpace(in.StartTime)

	if in.Client == "" || in.Barber == "" || in.Type == "" || in.StartTime == "" {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "Faltan datos")
	}

	// --------------------------------------------------
	// 2. Start time in the shop zone + business hours
	// --------------------------------------------------
	start, err := timezone.ParseStart(in.StartTime, uc.hours.Location)
	if err != nil {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "Fecha inválida: %s", in.StartTime)
	}

	if err := uc.hours.Validate(start, uc.now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Barber must exist
	// --------------------------------------------------
	barber, err := uc.users.FindByNameAndRole(ctx, in.Barber, user.RoleBarber)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeUnknownBarber, "No existe el barbero %s", in.Barber)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Catalog
	// --------------------------------------------------
	resolved, err := domain.Resolve(domain.Type(in.Type), in.Services)
	if err != nil {
		return nil, err
	}
	duration := time.Duration(resolved.DurationMinutes) * time.Minute

	// --------------------------------------------------
	// 5. Conflict check + insert under the barber lock
	// --------------------------------------------------
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	unlock, err := uc.locker.Lock(lockCtx, lock.BarberKey(in.Barber))
	if err != nil {
		return nil, fmt.Errorf("lock agenda %s: %w", in.Barber, err)
	}
	defer unlock()

	existing, err := uc.repo.ListByBarber(ctx, in.Barber)
	if err != nil {
		return nil, err
	}

	if clash := domain.FindConflict(in.Barber, start, duration, existing); clash != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionTurnoConflict,
			Entity:   "turno",
			EntityID: &clash.ID,
			Actor:    in.Actor,
			Metadata: map[string]any{
				"barbero": in.Barber,
				"fecha":   start,
				"tipo":    resolved.Type,
			},
		})
		return nil, domain.ConflictError(in.Barber)
	}

	ap := &models.Appointment{
		Client:          in.Client,
		Barber:          in.Barber,
		StartTime:       start,
		EndTime:         start.Add(duration),
		Type:            string(resolved.Type),
		Services:        resolved.Services,
		DurationMinutes: resolved.DurationMinutes,
		Price:           resolved.Price,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Audit + barber notification
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionTurnoCreated,
		Entity:   "turno",
		EntityID: &ap.ID,
		Actor:    in.Actor,
		Metadata: map[string]any{
			"cliente": ap.Client,
			"barbero": ap.Barber,
			"tipo":    ap.Type,
		},
		Notice: bookingNotice(barber, ap, uc.hours.Location),
	})

	return ap, nil
}

func bookingNotice(barber *models.User, ap *models.Appointment, loc *time.Location) *audit.Notice {
	if barber.Email == "" {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	start := ap.StartTime.In(loc)
	return &audit.Notice{
		To:      barber.Email,
		Subject: fmt.Sprintf("Nuevo turno %s - %s", ap.Type, start.Format("02/01 15:04")),
		Body: fmt.Sprintf(
			"Hola %s,\n\n%s reservó un turno %s (%s) el %s a las %s.\nDuración: %d minutos. Precio: $%d.\n",
			barber.Name,
			ap.Client,
			ap.Type,
			ap.Services,
			start.Format("02/01/2006"),
			start.Format("15:04"),
			ap.DurationMinutes,
			ap.Price,
		),
	}
}
