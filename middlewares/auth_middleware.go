package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims que firma el login en auth_handler.go.
type Claims struct {
	Sub    uint   `json:"sub"`
	Nombre string `json:"nombre"`
	jwt.RegisteredClaims
}

func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Token requerido"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Encabezado de autorización inválido"})
	}
	return parts[1], nil
}

// RequireAuth valida el JWT (HS256) y deja los claims en el contexto.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (interface{}, error) {
				// Evita que cambien el algoritmo de firma.
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Token inválido"})
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Token inválido"})
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Token inválido"})
			}
			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Token expirado"})
			}
			c.Set("profesor_id", claims.Sub)
			c.Set("nombre", claims.Nombre)
			return next(c)
		}
	}
}
