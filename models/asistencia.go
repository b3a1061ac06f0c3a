package models

import "time"

const (
	EstadoPresente = "Presente"
	EstadoAusente  = "Ausente"
)

// Una fila por (alumno, fecha); el índice único respalda el upsert.
type Asistencia struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	IDAlumno string `gorm:"column:ID_Alumno;size:20;not null;uniqueIndex:idx_alumno_fecha" json:"ID_Alumno"`
	Fecha    string `gorm:"column:Fecha;size:10;not null;uniqueIndex:idx_alumno_fecha" json:"fecha"` // YYYY-MM-DD
	Estado   string `gorm:"column:Estado;size:10;not null" json:"estado"`                            // Presente | Ausente

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Asistencia) TableName() string { return "asistencia" }

// EstadoValido acepta únicamente los dos estados del contrato.
func EstadoValido(estado string) bool {
	return estado == EstadoPresente || estado == EstadoAusente
}
