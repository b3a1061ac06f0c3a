package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/SamuelSarazua/backEnd-Asistencia/config"
	"github.com/SamuelSarazua/backEnd-Asistencia/models"
	"github.com/SamuelSarazua/backEnd-Asistencia/repository"
)

type AsistenciaHandler struct {
	grados     GradoStore
	alumnos    AlumnoStore
	asistencia AsistenciaStore
	cfg        *config.Config
}

func NewAsistenciaHandler(grados GradoStore, alumnos AlumnoStore, asistencia AsistenciaStore, cfg *config.Config) *AsistenciaHandler {
	return &AsistenciaHandler{grados: grados, alumnos: alumnos, asistencia: asistencia, cfg: cfg}
}

type registrarAsistenciaReq struct {
	AlumnoID string `json:"alumno_id"`
	Fecha    string `json:"fecha"`
	Estado   string `json:"estado"`
}

// POST /asistencia y POST /registrar-asistencia
// alumno_id es el código visible del alumno (ID_Alumno). Escribir dos
// veces el mismo par (alumno, fecha) actualiza la fila existente.
func (h *AsistenciaHandler) Registrar(c echo.Context) error {
	var req registrarAsistenciaReq
	if err := c.Bind(&req); err != nil {
		return responderError(c, h.cfg, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
	}

	req.AlumnoID = strings.TrimSpace(req.AlumnoID)
	req.Fecha = strings.TrimSpace(req.Fecha)
	req.Estado = strings.TrimSpace(req.Estado)
	if req.AlumnoID == "" || req.Fecha == "" || req.Estado == "" {
		return responderError(c, h.cfg, http.StatusBadRequest, "Los campos alumno_id, fecha y estado son obligatorios", nil)
	}
	if !fechaValida(req.Fecha) {
		return responderError(c, h.cfg, http.StatusBadRequest, "La fecha debe tener formato YYYY-MM-DD", nil)
	}
	if !models.EstadoValido(req.Estado) {
		return responderError(c, h.cfg, http.StatusBadRequest, "El estado debe ser Presente o Ausente", nil)
	}

	if _, err := h.alumnos.BuscarPorIDAlumno(req.AlumnoID); err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return responderError(c, h.cfg, http.StatusNotFound, "Alumno no encontrado", nil)
		}
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error en el servidor", err)
	}

	if err := h.asistencia.Registrar(req.AlumnoID, req.Fecha, req.Estado); err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error en el servidor", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Asistencia registrada correctamente",
	})
}

// GET /asistencia/resumen?grado_id=&fecha= (requiere token)
// Conteo de presentes y ausentes del grado para la fecha.
func (h *AsistenciaHandler) Resumen(c echo.Context) error {
	gradoID, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("grado_id")))
	if err != nil || gradoID <= 0 {
		return responderError(c, h.cfg, http.StatusBadRequest, "El parámetro grado_id es requerido", nil)
	}
	fecha := strings.TrimSpace(c.QueryParam("fecha"))
	if fecha == "" {
		fecha = hoy()
	} else if !fechaValida(fecha) {
		return responderError(c, h.cfg, http.StatusBadRequest, "La fecha debe tener formato YYYY-MM-DD", nil)
	}

	g, err := h.grados.BuscarPorID(uint(gradoID))
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return responderError(c, h.cfg, http.StatusNotFound, "El grado especificado no existe", nil)
		}
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error en el servidor", err)
	}

	presentes, ausentes, err := h.asistencia.ResumenDia(g.ID, fecha)
	if err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error en el servidor", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"grado":     g.NombreGrado,
		"fecha":     fecha,
		"presentes": presentes,
		"ausentes":  ausentes,
		"total":     presentes + ausentes,
	})
}
