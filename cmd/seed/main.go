// Command seed creates a demo barber, a demo client and one Combo turno.
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	"github.com/BruksfildServices01/barber-turnos/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-turnos/internal/db"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barber-turnos/internal/infra/repository"
	"github.com/BruksfildServices01/barber-turnos/internal/lock"
	"github.com/BruksfildServices01/barber-turnos/internal/logging"
	"github.com/BruksfildServices01/barber-turnos/internal/routes"
	ucAppointment "github.com/BruksfildServices01/barber-turnos/internal/usecase/appointment"
	ucUser "github.com/BruksfildServices01/barber-turnos/internal/usecase/user"
)

const demoPassword = "123456"

func main() {
	cfg := config.Load()
	logging.Setup(false)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ctx := context.Background()

	users := infraRepo.NewUserGormRepository(db)
	appointments := infraRepo.NewAppointmentGormRepository(db)

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dispatcher.Close(closeCtx)
	}()

	register := ucUser.NewRegisterUser(users, dispatcher, nil)

	seedUser(ctx, register, ucUser.RegisterInput{
		Name:     "Carlos Martinez",
		Email:    "barbero@test.com",
		Phone:    "1122334455",
		Password: demoPassword,
		Role:     string(user.RoleBarber),
	})
	seedUser(ctx, register, ucUser.RegisterInput{
		Name:     "Juan Perez",
		Email:    "cliente@test.com",
		Phone:    "1199887766",
		Password: demoPassword,
		Role:     string(user.RoleClient),
	})

	hours := routes.ShopHours(cfg)
	book := ucAppointment.NewBookAppointment(appointments, users, lock.NewKeyedMutex(), hours, dispatcher)

	start := nextOpenSlot(hours.Location, hours.OpenHour+1)
	ap, err := book.Execute(ctx, ucAppointment.BookInput{
		Client:    "Juan Perez",
		Barber:    "Carlos Martinez",
		Type:      "Combo",
		StartTime: start.Format(time.RFC3339),
		Actor:     "seed",
	})
	switch {
	case err == nil:
		log.Info().Uint("id", ap.ID).Time("fecha", ap.StartTime).Msg("turno created")
	case httperr.IsBusiness(err, httperr.CodeSchedulingConflict):
		log.Info().Msg("turno already seeded")
	default:
		log.Fatal().Err(err).Msg("failed to seed turno")
	}
}

func seedUser(ctx context.Context, register *ucUser.RegisterUser, in ucUser.RegisterInput) {
	u, err := register.Execute(ctx, in)
	switch {
	case err == nil:
		log.Info().Str("email", u.Email).Str("tipoUsuario", u.Role).Msg("user created")
	case httperr.IsBusiness(err, httperr.CodeEmailTaken):
		log.Info().Str("email", in.Email).Msg("user already exists")
	default:
		log.Fatal().Err(err).Str("email", in.Email).Msg("failed to seed user")
	}
}

// nextOpenSlot returns tomorrow at hour, moved past Sunday.
func nextOpenSlot(loc *time.Location, hour int) time.Time {
	d := time.Now().In(loc).AddDate(0, 0, 1)
	if d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, loc)
}
