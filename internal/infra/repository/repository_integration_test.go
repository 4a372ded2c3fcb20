//go:build integration

package repository

// Run with: go test -tags integration ./internal/infra/repository/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/barber-turnos/internal/db"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcPostgres.WithDatabase("turnos_test"),
		tcPostgres.WithUsername("turnos"),
		tcPostgres.WithPassword("turnos"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func turno(client, barber string, start time.Time, minutes int) *models.Appointment {
	return &models.Appointment{
		Client:          client,
		Barber:          barber,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		Type:            "Combo",
		Services:        "Corte-Barba",
		DurationMinutes: minutes,
		Price:           700,
	}
}

func TestGormRepositories(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	appointments := NewAppointmentGormRepository(db)
	users := NewUserGormRepository(db)

	start := time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("overlapping turno is a scheduling conflict", func(t *testing.T) {
		require.NoError(t, appointments.Create(ctx, turno("Perez", "Agustin", start, 45)))

		err := appointments.Create(ctx, turno("Gomez", "Agustin", start.Add(30*time.Minute), 20))
		assert.True(t, httperr.IsBusiness(err, httperr.CodeSchedulingConflict))
	})

	t.Run("exclusion constraint rejects a raw overlapping insert", func(t *testing.T) {
		err := db.WithContext(ctx).Create(turno("Lopez", "Agustin", start.Add(10*time.Minute), 30)).Error
		require.Error(t, err)
		assert.True(t, httperr.IsExclusionConflict(err))
	})

	t.Run("back to back turnos are accepted", func(t *testing.T) {
		require.NoError(t, appointments.Create(ctx, turno("Gomez", "Agustin", start.Add(45*time.Minute), 20)))
		require.NoError(t, appointments.Create(ctx, turno("Gomez", "Carlos", start, 45)))

		list, err := appointments.ListByBarber(ctx, "Agustin")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.True(t, list[0].StartTime.Before(list[1].StartTime))
	})

	t.Run("delete first by client removes the oldest", func(t *testing.T) {
		removed, err := appointments.DeleteFirstByClient(ctx, "Gomez")
		require.NoError(t, err)
		require.NotNil(t, removed)
		assert.Equal(t, "Agustin", removed.Barber)

		none, err := appointments.DeleteFirstByClient(ctx, "Nadie")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("missing turno is not found", func(t *testing.T) {
		_, err := appointments.GetByID(ctx, 99999)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

		ok, err := appointments.DeleteByID(ctx, 99999)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate email is rejected case-insensitively", func(t *testing.T) {
		u := &models.User{Name: "Agustin", Email: "agustin@test.com", PasswordHash: "x", Role: string(user.RoleBarber)}
		require.NoError(t, users.Create(ctx, u))

		dup := &models.User{Name: "Otro", Email: "AGUSTIN@test.com", PasswordHash: "x", Role: string(user.RoleClient)}
		err := users.Create(ctx, dup)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeEmailTaken))

		found, err := users.FindByNameAndRole(ctx, "Agustin", user.RoleBarber)
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)

		_, err = users.FindByNameAndRole(ctx, "Agustin", user.RoleClient)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})
}
