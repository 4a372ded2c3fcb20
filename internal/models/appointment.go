package models

import "time"

// Appointment is a booked turno. Duration and price always come from the
// type catalog; EndTime is StartTime plus the duration.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Client string `gorm:"column:cliente;size:100;not null;index" json:"cliente"`
	Barber string `gorm:"column:barbero;size:100;not null;index" json:"barbero"`

	StartTime time.Time `gorm:"column:fecha;not null" json:"fecha"`
	EndTime   time.Time `gorm:"column:fin;not null" json:"fin"`

	Type            string `gorm:"column:tipo;size:20;not null" json:"tipo"`
	Services        string `gorm:"column:servicios;size:255" json:"servicios"`
	DurationMinutes int    `gorm:"column:duracion;not null" json:"duracion"`
	Price           int    `gorm:"column:precio;not null" json:"precio"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Appointment) TableName() string {
	return "turnos"
}
