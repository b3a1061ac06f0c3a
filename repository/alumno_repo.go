package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SamuelSarazua/backEnd-Asistencia/models"
)

// AlumnoAsistencia es la fila que consume el frontend: alumno más su
// estado del día, "Ausente" cuando no hay registro.
type AlumnoAsistencia struct {
	ID       uint   `gorm:"column:id" json:"id"`
	IDAlumno string `gorm:"column:ID_Alumno" json:"ID_Alumno"`
	Nombre   string `gorm:"column:Nombre" json:"Nombre"`
	Apellido string `gorm:"column:Apellido" json:"Apellido"`
	Estado   string `gorm:"column:Estado" json:"Estado"`
}

type AlumnoRepository struct {
	db *gorm.DB
}

func NewAlumnoRepository(db *gorm.DB) *AlumnoRepository {
	return &AlumnoRepository{db: db}
}

func (r *AlumnoRepository) BuscarPorIDAlumno(idAlumno string) (*models.Alumno, error) {
	var a models.Alumno
	if err := r.db.Where(`"ID_Alumno" = ?`, idAlumno).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &a, nil
}

// ListarPorGrado devuelve la nómina del grado sin datos de asistencia.
func (r *AlumnoRepository) ListarPorGrado(gradoID uint) ([]models.Alumno, error) {
	var alumnos []models.Alumno
	err := r.db.
		Where(`"ID_Grado" = ?`, gradoID).
		Order(`"Apellido" ASC, "Nombre" ASC`).
		Find(&alumnos).Error
	if err != nil {
		return nil, err
	}
	return alumnos, nil
}

// ListarConAsistencia anota cada alumno del grado con su estado en la
// fecha dada; sin registro para ese día el estado es "Ausente".
func (r *AlumnoRepository) ListarConAsistencia(gradoID uint, fecha string) ([]AlumnoAsistencia, error) {
	filas := []AlumnoAsistencia{}
	err := r.db.Raw(`
		SELECT a.id,
		       a."ID_Alumno",
		       a."Nombre",
		       a."Apellido",
		       COALESCE(asi."Estado", 'Ausente') AS "Estado"
		FROM alumnos a
		LEFT JOIN asistencia asi
		       ON asi."ID_Alumno" = a."ID_Alumno" AND asi."Fecha" = ?
		WHERE a."ID_Grado" = ?
		ORDER BY a."Apellido" ASC, a."Nombre" ASC`,
		fecha, gradoID).Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	return filas, nil
}
