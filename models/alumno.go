package models

type Alumno struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	IDAlumno string `gorm:"column:ID_Alumno;size:20;not null;uniqueIndex" json:"ID_Alumno"` // código visible del alumno
	Nombre   string `gorm:"column:Nombre;size:50;not null" json:"Nombre"`
	Apellido string `gorm:"column:Apellido;size:50;not null" json:"Apellido"`
	IDGrado  uint   `gorm:"column:ID_Grado;index;not null" json:"ID_Grado"`
}

func (Alumno) TableName() string { return "alumnos" }
