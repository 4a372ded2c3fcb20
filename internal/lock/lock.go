// Package lock provides the per-barber mutual-exclusion scope used around
// the conflict check and insert of a booking.
package lock

import "context"

// Locker serializes work on a key. The returned unlock func must be called
// exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// BarberKey is the lock key for a barber's agenda.
func BarberKey(barber string) string {
	return "turnos:lock:barbero:" + barber
}
