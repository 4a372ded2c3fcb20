package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// AppointmentStore keeps turnos in insertion order behind a mutex. Ids come
// from a monotonic counter starting at 1.
type AppointmentStore struct {
	mu     sync.RWMutex
	items  []models.Appointment
	nextID uint
	now    func() time.Time
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{nextID: 1, now: time.Now}
}

func (s *AppointmentStore) Create(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap.ID = s.nextID
	s.nextID++

	now := s.now()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	s.items = append(s.items, *ap)
	return nil
}

func (s *AppointmentStore) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ap := range s.items {
		if ap.ID == id {
			found := ap
			return &found, nil
		}
	}
	return nil, httperr.ErrBusinessf(httperr.CodeNotFound, "No existe un turno con ese ID")
}

func (s *AppointmentStore) ListAll(_ context.Context) ([]models.Appointment, error) {
	return s.filter(func(models.Appointment) bool { return true }), nil
}

func (s *AppointmentStore) ListByClient(_ context.Context, client string) ([]models.Appointment, error) {
	return s.filter(func(ap models.Appointment) bool { return ap.Client == client }), nil
}

func (s *AppointmentStore) ListByBarber(_ context.Context, barber string) ([]models.Appointment, error) {
	out := s.filter(func(ap models.Appointment) bool { return ap.Barber == barber })
	sortByStart(out)
	return out, nil
}

func (s *AppointmentStore) ListByBarberBetween(
	_ context.Context,
	barber string,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {
	out := s.filter(func(ap models.Appointment) bool {
		return ap.Barber == barber && !ap.StartTime.Before(from) && ap.StartTime.Before(to)
	})
	sortByStart(out)
	return out, nil
}

func (s *AppointmentStore) DeleteByID(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ap := range s.items {
		if ap.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *AppointmentStore) DeleteFirstByClient(_ context.Context, client string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ap := range s.items {
		if ap.Client == client {
			removed := ap
			s.items = append(s.items[:i], s.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, nil
}

// Len is the number of stored turnos.
func (s *AppointmentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *AppointmentStore) filter(keep func(models.Appointment) bool) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(s.items))
	for _, ap := range s.items {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	return out
}

func sortByStart(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		return aps[i].StartTime.Before(aps[j].StartTime)
	})
}

var _ domain.Repository = (*AppointmentStore)(nil)
