package models

// Dato de referencia: esta API solo lo lee.
type Grado struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	NombreGrado string `gorm:"column:Nombre_Grado;size:50;not null" json:"Nombre_Grado"`
}

func (Grado) TableName() string { return "grados" }
