package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/SamuelSarazua/backEnd-Asistencia/config"
	"github.com/SamuelSarazua/backEnd-Asistencia/handlers"
	"github.com/SamuelSarazua/backEnd-Asistencia/middlewares"
	"github.com/SamuelSarazua/backEnd-Asistencia/repository"
)

// Register arma la capa de consultas y cuelga todas las rutas.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	profesores := repository.NewProfesorRepository(db)
	grados := repository.NewGradoRepository(db)
	alumnos := repository.NewAlumnoRepository(db)
	asistencia := repository.NewAsistenciaRepository(db)

	auth := handlers.NewAuthHandler(profesores, cfg)
	grd := handlers.NewGradoHandler(grados, cfg)
	alm := handlers.NewAlumnoHandler(grados, alumnos, cfg)
	asi := handlers.NewAsistenciaHandler(grados, alumnos, asistencia, cfg)

	e.GET("/health", handlers.Health)

	// ===== Rutas públicas (contrato original) =====
	e.POST("/registro", auth.Registro)
	e.POST("/login", auth.Login)

	e.GET("/grados", grd.Listar)
	e.GET("/grados/:id", grd.BuscarPorID)

	e.GET("/alumnos", alm.Listar)
	e.GET("/alumnos-asistencia", alm.ListarAsistencia)
	e.GET("/alumnos-por-grado", alm.ListarPorGrado)

	e.POST("/asistencia", asi.Registrar)
	e.POST("/registrar-asistencia", asi.Registrar)

	// ===== Rutas con token =====
	priv := e.Group("", middlewares.RequireAuth(cfg.JWTSecret))
	priv.GET("/perfil", auth.Perfil)
	priv.PUT("/perfil/contrasena", auth.CambiarContrasena)
	priv.GET("/asistencia/resumen", asi.Resumen)
}
