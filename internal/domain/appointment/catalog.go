package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

// ===============================
// Appointment Types
// ===============================

type Type string

const (
	TypeSimple  Type = "Simple"
	TypeCombo   Type = "Combo"
	TypeExpress Type = "Express"
)

// CatalogEntry is the fixed configuration of one appointment type.
// An empty DefaultServices means the caller must supply them.
type CatalogEntry struct {
	Type            Type
	DurationMinutes int
	Price           int
	DefaultServices string
}

var catalog = map[Type]CatalogEntry{
	TypeSimple:  {Type: TypeSimple, DurationMinutes: 30, Price: 500},
	TypeExpress: {Type: TypeExpress, DurationMinutes: 20, Price: 900},
	TypeCombo:   {Type: TypeCombo, DurationMinutes: 45, Price: 700, DefaultServices: "Corte-Barba"},
}

// Resolved is what a booking inherits from its type.
type Resolved struct {
	Type            Type
	DurationMinutes int
	Price           int
	Services        string
}

// Lookup returns the catalog entry for t.
func Lookup(t Type) (CatalogEntry, bool) {
	e, ok := catalog[t]
	return e, ok
}

// Types lists the catalog in a stable order.
func Types() []CatalogEntry {
	return []CatalogEntry{catalog[TypeSimple], catalog[TypeExpress], catalog[TypeCombo]}
}

// Resolve derives duration, price and services for a booking of type t.
// Fixed-service types ignore the caller's services.
func Resolve(t Type, callerServices string) (Resolved, error) {
	e, ok := catalog[t]
	if !ok {
		return Resolved{}, httperr.ErrBusinessf(
			httperr.CodeUnknownType,
			"No existe el tipo de turno %q", string(t),
		)
	}

	services := strings.TrimSpace(callerServices)
	if e.DefaultServices != "" {
		services = e.DefaultServices
	}
	if services == "" {
		return Resolved{}, httperr.ErrBusinessf(
			httperr.CodeValidation,
			"Debes especificar los servicios para un turno %s", string(t),
		)
	}

	return Resolved{
		Type:            e.Type,
		DurationMinutes: e.DurationMinutes,
		Price:           e.Price,
		Services:        services,
	}, nil
}
