package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Name         string `gorm:"column:nombre;size:100;not null;index" json:"nombre"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"column:telefono;size:30" json:"telefono"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"column:tipo_usuario;size:20;not null;index" json:"tipoUsuario"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "usuarios"
}
