package handlers

import (
	"github.com/SamuelSarazua/backEnd-Asistencia/models"
	"github.com/SamuelSarazua/backEnd-Asistencia/repository"
)

// Contratos mínimos que los handlers exigen a la capa de consultas.
// Los implementa repository; los tests usan dobles en memoria.

type ProfesorStore interface {
	Crear(p *models.Profesor) error
	BuscarPorCorreo(correo string) (*models.Profesor, error)
	BuscarPorID(id uint) (*models.Profesor, error)
	ActualizarContrasena(id uint, hash string) error
}

type GradoStore interface {
	Listar() ([]models.Grado, error)
	BuscarPorID(id uint) (*models.Grado, error)
}

type AlumnoStore interface {
	BuscarPorIDAlumno(idAlumno string) (*models.Alumno, error)
	ListarPorGrado(gradoID uint) ([]models.Alumno, error)
	ListarConAsistencia(gradoID uint, fecha string) ([]repository.AlumnoAsistencia, error)
}

type AsistenciaStore interface {
	Registrar(idAlumno, fecha, estado string) error
	ResumenDia(gradoID uint, fecha string) (presentes, ausentes int64, err error)
}
