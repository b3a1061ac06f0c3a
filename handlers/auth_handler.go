package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/SamuelSarazua/backEnd-Asistencia/config"
	"github.com/SamuelSarazua/backEnd-Asistencia/models"
	"github.com/SamuelSarazua/backEnd-Asistencia/repository"
)

type AuthHandler struct {
	profesores ProfesorStore
	cfg        *config.Config
}

func NewAuthHandler(profesores ProfesorStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{profesores: profesores, cfg: cfg}
}

func (h *AuthHandler) signJWT(sub uint, nombre string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    sub,
		"nombre": nombre,
		"exp":    time.Now().Add(ttl).Unix(),
		"iat":    time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.cfg.JWTSecret))
}

/* ====================== DTOs ====================== */

type registroReq struct {
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

type loginReq struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

type cambiarContrasenaReq struct {
	Actual string `json:"actual"`
	Nueva  string `json:"nueva"`
}

func perfilPublico(p *models.Profesor) map[string]interface{} {
	// Nunca sale la contraseña, ni siquiera el hash.
	return map[string]interface{}{
		"id":       p.ID,
		"nombre":   p.Nombre,
		"apellido": p.Apellido,
		"email":    p.Correo,
	}
}

/* ====================== Handlers ====================== */

// POST /registro
func (h *AuthHandler) Registro(c echo.Context) error {
	var req registroReq
	if err := c.Bind(&req); err != nil {
		return responderError(c, h.cfg, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
	}

	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Apellido = strings.TrimSpace(req.Apellido)
	req.Correo = strings.TrimSpace(strings.ToLower(req.Correo))
	if req.Nombre == "" || req.Apellido == "" || req.Correo == "" || req.Contrasena == "" {
		return responderError(c, h.cfg, http.StatusBadRequest, "Todos los campos son obligatorios", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al registrar usuario", err)
	}

	p := models.Profesor{
		Nombre:     req.Nombre,
		Apellido:   req.Apellido,
		Correo:     req.Correo,
		Contrasena: string(hash),
	}
	if err := h.profesores.Crear(&p); err != nil {
		if errors.Is(err, repository.ErrCorreoDuplicado) {
			return responderError(c, h.cfg, http.StatusInternalServerError, "El correo ya está registrado", nil)
		}
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al registrar usuario", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"mensaje": "Usuario registrado",
		"id":      p.ID,
	})
}

// POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return responderError(c, h.cfg, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
	}

	usuario := strings.TrimSpace(strings.ToLower(req.Usuario))
	if usuario == "" || req.Contrasena == "" {
		return responderError(c, h.cfg, http.StatusBadRequest, "Usuario y contraseña son requeridos", nil)
	}

	p, err := h.profesores.BuscarPorCorreo(usuario)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			// Misma respuesta que una contraseña incorrecta.
			return responderError(c, h.cfg, http.StatusUnauthorized, "Credenciales incorrectas", nil)
		}
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error en el login", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(p.Contrasena), []byte(req.Contrasena)) != nil {
		return responderError(c, h.cfg, http.StatusUnauthorized, "Credenciales incorrectas", nil)
	}

	token, err := h.signJWT(p.ID, p.Nombre, 7*24*time.Hour)
	if err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error en el login", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"profesor": perfilPublico(p),
		"mensaje":  "Inicio de sesión exitoso",
		"token":    token,
	})
}

// GET /perfil (requiere token)
func (h *AuthHandler) Perfil(c echo.Context) error {
	id, _ := c.Get("profesor_id").(uint)
	p, err := h.profesores.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return responderError(c, h.cfg, http.StatusNotFound, "Profesor no encontrado", nil)
		}
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al obtener el perfil", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"profesor": perfilPublico(p),
	})
}

// PUT /perfil/contrasena (requiere token)
func (h *AuthHandler) CambiarContrasena(c echo.Context) error {
	var req cambiarContrasenaReq
	if err := c.Bind(&req); err != nil {
		return responderError(c, h.cfg, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
	}
	if req.Actual == "" || req.Nueva == "" {
		return responderError(c, h.cfg, http.StatusBadRequest, "Los campos actual y nueva son obligatorios", nil)
	}
	if len(req.Nueva) < 8 {
		return responderError(c, h.cfg, http.StatusBadRequest, "La nueva contraseña debe tener al menos 8 caracteres", nil)
	}

	id, _ := c.Get("profesor_id").(uint)
	p, err := h.profesores.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return responderError(c, h.cfg, http.StatusNotFound, "Profesor no encontrado", nil)
		}
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al cambiar la contraseña", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(p.Contrasena), []byte(req.Actual)) != nil {
		return responderError(c, h.cfg, http.StatusUnauthorized, "La contraseña actual no es correcta", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Nueva), bcrypt.DefaultCost)
	if err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al cambiar la contraseña", err)
	}
	if err := h.profesores.ActualizarContrasena(p.ID, string(hash)); err != nil {
		return responderError(c, h.cfg, http.StatusInternalServerError, "Error al cambiar la contraseña", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"mensaje": "Contraseña actualizada",
	})
}
