package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// AgendaItemDTO is one row of a barber's agenda, with times rendered in
// the shop zone.
type AgendaItemDTO struct {
	ID        uint   `json:"_id"`
	Cliente   string `json:"cliente"`
	Fecha     string `json:"fecha"`
	Inicio    string `json:"inicio"`
	Fin       string `json:"fin"`
	Tipo      string `json:"tipo"`
	Servicios string `json:"servicios"`
	Precio    int    `json:"precio"`
}

func NewAgenda(apps []models.Appointment, loc *time.Location) []AgendaItemDTO {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]AgendaItemDTO, 0, len(apps))
	for _, ap := range apps {
		start := ap.StartTime.In(loc)
		out = append(out, AgendaItemDTO{
			ID:        ap.ID,
			Cliente:   ap.Client,
			Fecha:     start.Format("2006-01-02"),
			Inicio:    start.Format("15:04"),
			Fin:       ap.EndTime.In(loc).Format("15:04"),
			Tipo:      ap.Type,
			Servicios: ap.Services,
			Precio:    ap.Price,
		})
	}
	return out
}
