package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SamuelSarazua/backEnd-Asistencia/models"
)

type GradoRepository struct {
	db *gorm.DB
}

func NewGradoRepository(db *gorm.DB) *GradoRepository {
	return &GradoRepository{db: db}
}

// Listar devuelve todos los grados ordenados alfabéticamente.
func (r *GradoRepository) Listar() ([]models.Grado, error) {
	var grados []models.Grado
	if err := r.db.Order(`"Nombre_Grado" ASC`).Find(&grados).Error; err != nil {
		return nil, err
	}
	return grados, nil
}

func (r *GradoRepository) BuscarPorID(id uint) (*models.Grado, error) {
	var g models.Grado
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &g, nil
}
