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

type AlumnoHandler struct {
	grados  GradoStore
	alumnos AlumnoStore
	cfg     *config.Config
}

func NewAlumnoHandler(grados GradoStore, alumnos AlumnoStore, cfg *config.Config) *AlumnoHandler {
	return &AlumnoHandler{grados: grados, alumnos: alumnos, cfg: cfg}
}

type alumnoDTO struct {
	ID       uint   `json:"id"`
	IDAlumno string `json:"ID_Alumno"`
	Nombre   string `json:"Nombre"`
	Apellido string `json:"Apellido"`
}

// buscarGrado resuelve grado_id del query string y verifica que exista.
func (h *AlumnoHandler) buscarGrado(c echo.Context) (*models.Grado, error) {
	gradoID, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("grado_id")))
	if err != nil || gradoID <= 0 {
		return nil, responderError(c, h.cfg, http.StatusBadRequest, "El parámetro grado_id es inválido", nil)
	}
	g, err := h.grados.BuscarPorID(uint(gradoID))
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, responderError(c, h.cfg, http.StatusNotFound, "El grado especificado no existe", nil)
		}
		return nil, responderError(c, h.cfg, http.StatusInternalServerError, "Error al obtener alumnos", err)
	}
	return g, nil
}

func (h *AlumnoHandler) listarConAsistencia(c echo.Context, fecha string) error {
	g, errResp := h.buscarGrado(c)
	if g == nil {
		return errResp
	}

	alumnos, err := h.alumnos.ListarConAsistencia(g.ID, fecha)
	if err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al obtener alumnos", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"grado":   g.NombreGrado,
		"fecha":   fecha,
		"alumnos": alumnos,
	})
}

// GET /alumnos?grado_id=&fecha=
// fecha es opcional: sin ella se asume el día de hoy.
func (h *AlumnoHandler) Listar(c echo.Context) error {
	if strings.TrimSpace(c.QueryParam("grado_id")) == "" {
		return responderError(c, h.cfg, http.StatusBadRequest, "El parámetro grado_id es requerido", nil)
	}
	fecha := strings.TrimSpace(c.QueryParam("fecha"))
	if fecha == "" {
		fecha = hoy()
	} else if !fechaValida(fecha) {
		return responderError(c, h.cfg, http.StatusBadRequest, "La fecha debe tener formato YYYY-MM-DD", nil)
	}
	return h.listarConAsistencia(c, fecha)
}

// GET /alumnos-asistencia?grado_id=&fecha=
// Variante estricta: ambos parámetros son obligatorios.
func (h *AlumnoHandler) ListarAsistencia(c echo.Context) error {
	gradoID := strings.TrimSpace(c.QueryParam("grado_id"))
	fecha := strings.TrimSpace(c.QueryParam("fecha"))
	if gradoID == "" || fecha == "" {
		return responderError(c, h.cfg, http.StatusBadRequest, "Los parámetros grado_id y fecha son requeridos", nil)
	}
	if !fechaValida(fecha) {
		return responderError(c, h.cfg, http.StatusBadRequest, "La fecha debe tener formato YYYY-MM-DD", nil)
	}
	return h.listarConAsistencia(c, fecha)
}

// GET /alumnos-por-grado?grado_id=
// Solo la nómina, sin estado de asistencia.
func (h *AlumnoHandler) ListarPorGrado(c echo.Context) error {
	if strings.TrimSpace(c.QueryParam("grado_id")) == "" {
		return responderError(c, h.cfg, http.StatusBadRequest, "El parámetro grado_id es requerido", nil)
	}
	g, errResp := h.buscarGrado(c)
	if g == nil {
		return errResp
	}

	alumnos, err := h.alumnos.ListarPorGrado(g.ID)
	if err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al obtener alumnos", err)
	}

	out := make([]alumnoDTO, 0, len(alumnos))
	for _, a := range alumnos {
		out = append(out, alumnoDTO{ID: a.ID, IDAlumno: a.IDAlumno, Nombre: a.Nombre, Apellido: a.Apellido})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"grado":   g.NombreGrado,
		"alumnos": out,
	})
}
