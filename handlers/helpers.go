package handlers

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SamuelSarazua/backEnd-Asistencia/config"
)

const formatoFecha = "2006-01-02"

// responderError arma el sobre {success:false, error, details?}.
// El error completo siempre se registra en el servidor; details solo
// sale hacia el cliente fuera de producción.
func responderError(c echo.Context, cfg *config.Config, status int, mensaje string, err error) error {
	body := map[string]interface{}{
		"success": false,
		"error":   mensaje,
	}
	if err != nil {
		log.Printf("[ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		if !cfg.IsProduction() {
			body["details"] = err.Error()
		}
	}
	return c.JSON(status, body)
}

func fechaValida(fecha string) bool {
	_, err := time.Parse(formatoFecha, fecha)
	return err == nil
}

func hoy() string {
	return time.Now().Format(formatoFecha)
}
