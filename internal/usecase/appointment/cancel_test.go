package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

func TestCancel_ByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.book.Execute(ctx, simpleAt("2026-10-15T10:00"))
	require.NoError(t, err)

	uc := NewCancelAppointment(f.repo, nil)
	require.NoError(t, uc.ByID(ctx, ap.ID, "perez@test.com"))
	assert.Equal(t, 0, f.repo.Len())

	err = uc.ByID(ctx, ap.ID, "perez@test.com")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestCancel_ByClientNameRemovesFirstOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.book.Execute(ctx, simpleAt("2026-10-15T10:00"))
	require.NoError(t, err)
	second, err := f.book.Execute(ctx, simpleAt("2026-10-15T11:00"))
	require.NoError(t, err)

	uc := NewCancelAppointment(f.repo, nil)
	removed, err := uc.ByClientName(ctx, "Perez", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, removed.ID)

	left, err := NewListAppointments(f.repo).ByClient(ctx, "Perez")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, second.ID, left[0].ID)
}

func TestCancel_ByClientNameMiss(t *testing.T) {
	f := newFixture(t)

	_, err := NewCancelAppointment(f.repo, nil).ByClientName(context.Background(), "Nadie", "")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestList_ClientMatchIsExact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.book.Execute(ctx, simpleAt("2026-10-15T10:00"))
	require.NoError(t, err)

	uc := NewListAppointments(f.repo)

	apps, err := uc.ByClient(ctx, "perez")
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)

	apps, err = uc.ByClient(ctx, "Perez")
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = uc.ByClient(ctx, "")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestList_AgendaIsOrderedByStart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, start := range []string{"2026-10-15T15:00", "2026-10-15T09:00", "2026-10-15T12:00"} {
		_, err := f.book.Execute(ctx, simpleAt(start))
		require.NoError(t, err)
	}

	apps, err := NewListAppointments(f.repo).ByBarber(ctx, "Agustin")
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, 9, apps[0].StartTime.In(f.loc).Hour())
	assert.Equal(t, 12, apps[1].StartTime.In(f.loc).Hour())
	assert.Equal(t, 15, apps[2].StartTime.In(f.loc).Hour())

	all, err := NewListAppointments(f.repo).All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
