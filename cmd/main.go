package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/SamuelSarazua/backEnd-Asistencia/config"
	"github.com/SamuelSarazua/backEnd-Asistencia/database"
	"github.com/SamuelSarazua/backEnd-Asistencia/routes"
)

func main() {
	cfg := config.Load()

	// Si la base no está disponible conviene fallar de inmediato.
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("no se pudo conectar a la base de datos: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("error al cerrar la base de datos: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	routes.Register(e, db, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("servidor escuchando en %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
