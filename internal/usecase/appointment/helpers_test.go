package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/memory"
	"github.com/BruksfildServices01/barber-turnos/internal/lock"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type fixture struct {
	repo  *memory.AppointmentStore
	users *memory.UserStore
	hours domain.BusinessHours
	loc   *time.Location
	now   time.Time
	book  *BookAppointment
}

// newFixture pins "now" to Wednesday 2026-10-14 12:00 in Buenos Aires and
// registers the barbers Agustin and Carlos.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	f := &fixture{
		repo:  memory.NewAppointmentStore(),
		users: memory.NewUserStore(),
		loc:   loc,
		now:   time.Date(2026, 10, 14, 12, 0, 0, 0, loc),
	}
	f.hours = domain.DefaultBusinessHours(loc)

	ctx := context.Background()
	for _, name := range []string{"Agustin", "Carlos"} {
		require.NoError(t, f.users.Create(ctx, &models.User{
			Name:  name,
			Email: name + "@barberia.test",
			Role:  string(user.RoleBarber),
		}))
	}
	require.NoError(t, f.users.Create(ctx, &models.User{
		Name:  "Perez",
		Email: "perez@test.com",
		Role:  string(user.RoleClient),
	}))

	f.book = NewBookAppointment(f.repo, f.users, lock.NewKeyedMutex(), f.hours, nil).
		WithClock(func() time.Time { return f.now })

	return f
}

func (f *fixture) at(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, f.loc)
}
