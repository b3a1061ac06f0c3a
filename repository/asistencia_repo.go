package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SamuelSarazua/backEnd-Asistencia/models"
)

type AsistenciaRepository struct {
	db *gorm.DB
}

func NewAsistenciaRepository(db *gorm.DB) *AsistenciaRepository {
	return &AsistenciaRepository{db: db}
}

// Registrar aplica el upsert sobre (ID_Alumno, Fecha) en una sola
// sentencia: inserta si no existe, actualiza el estado si ya hay fila.
// Repetir la misma escritura converge siempre a una única fila.
func (r *AsistenciaRepository) Registrar(idAlumno, fecha, estado string) error {
	rec := models.Asistencia{
		IDAlumno: idAlumno,
		Fecha:    fecha,
		Estado:   estado,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ID_Alumno"}, {Name: "Fecha"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"Estado":     estado,
			"updated_at": time.Now(),
		}),
	}).Create(&rec).Error
}

// ResumenDia cuenta presentes y ausentes de un grado para una fecha.
// Los alumnos sin registro cuentan como ausentes.
func (r *AsistenciaRepository) ResumenDia(gradoID uint, fecha string) (presentes, ausentes int64, err error) {
	var total int64
	err = r.db.Model(&models.Alumno{}).
		Where(`"ID_Grado" = ?`, gradoID).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.Model(&models.Asistencia{}).
		Joins(`JOIN alumnos a ON a."ID_Alumno" = asistencia."ID_Alumno"`).
		Where(`a."ID_Grado" = ? AND asistencia."Fecha" = ? AND asistencia."Estado" = ?`,
			gradoID, fecha, models.EstadoPresente).
		Count(&presentes).Error
	if err != nil {
		return 0, 0, err
	}

	return presentes, total - presentes, nil
}
