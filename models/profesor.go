package models

import "time"

type Profesor struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	Nombre     string    `gorm:"column:Nombre;size:50;not null" json:"nombre"`
	Apellido   string    `gorm:"column:Apellido;size:50;not null" json:"apellido"`
	Correo     string    `gorm:"column:Correo;size:100;not null;uniqueIndex" json:"email"`
	Contrasena string    `gorm:"column:contrasena;not null" json:"-"` // hash bcrypt
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Profesor) TableName() string { return "profesores" }
