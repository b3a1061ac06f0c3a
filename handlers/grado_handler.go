package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SamuelSarazua/backEnd-Asistencia/config"
	"github.com/SamuelSarazua/backEnd-Asistencia/repository"
)

type GradoHandler struct {
	grados GradoStore
	cfg    *config.Config
}

func NewGradoHandler(grados GradoStore, cfg *config.Config) *GradoHandler {
	return &GradoHandler{grados: grados, cfg: cfg}
}

// GET /grados
func (h *GradoHandler) Listar(c echo.Context) error {
	grados, err := h.grados.Listar()
	if err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al obtener los grados", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"grados":  grados,
	})
}

// GET /grados/:id
func (h *GradoHandler) BuscarPorID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return responderError(c, h.cfg, http.StatusBadRequest, "ID de grado inválido", nil)
	}

	g, err := h.grados.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return responderError(c, h.cfg, http.StatusNotFound, "Grado no encontrado", nil)
		}
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al obtener el grado", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"grado":   g,
	})
}
