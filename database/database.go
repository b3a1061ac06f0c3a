package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SamuelSarazua/backEnd-Asistencia/config"
	"github.com/SamuelSarazua/backEnd-Asistencia/models"
)

// Connect abre el pool de conexiones y migra el esquema.
// El *gorm.DB devuelto es el único acceso al almacén: se crea en el
// arranque y se cierra con Close al apagar el proceso.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		// Violaciones de clave única llegan como gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("conexión a la base de datos: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.Profesor{},
		&models.Grado{},
		&models.Alumno{},
		&models.Asistencia{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	if err := seedGrados(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Close libera el pool subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
