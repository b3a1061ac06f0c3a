package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SamuelSarazua/backEnd-Asistencia/models"
)

type ProfesorRepository struct {
	db *gorm.DB
}

func NewProfesorRepository(db *gorm.DB) *ProfesorRepository {
	return &ProfesorRepository{db: db}
}

// Crear inserta el profesor y rellena su ID. Un correo repetido se
// reporta como ErrCorreoDuplicado, nunca como error genérico.
func (r *ProfesorRepository) Crear(p *models.Profesor) error {
	if err := r.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCorreoDuplicado
		}
		return err
	}
	return nil
}

func (r *ProfesorRepository) BuscarPorCorreo(correo string) (*models.Profesor, error) {
	var p models.Profesor
	if err := r.db.Where(`"Correo" = ?`, correo).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfesorRepository) BuscarPorID(id uint) (*models.Profesor, error) {
	var p models.Profesor
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfesorRepository) ActualizarContrasena(id uint, hash string) error {
	res := r.db.Model(&models.Profesor{}).Where("id = ?", id).Update("contrasena", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}
