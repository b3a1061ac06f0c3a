package database

import (
	"gorm.io/gorm"

	"github.com/SamuelSarazua/backEnd-Asistencia/models"
)

// seedGrados carga los grados de referencia cuando la tabla está vacía.
func seedGrados(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Grado{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	grados := []models.Grado{
		{NombreGrado: "Primero Primaria"},
		{NombreGrado: "Segundo Primaria"},
		{NombreGrado: "Tercero Primaria"},
		{NombreGrado: "Cuarto Primaria"},
		{NombreGrado: "Quinto Primaria"},
		{NombreGrado: "Sexto Primaria"},
	}
	return db.Create(&grados).Error
}
