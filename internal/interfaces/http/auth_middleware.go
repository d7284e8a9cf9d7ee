package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/pkg/jwt"
)

// CookieToken nombre de la cookie HTTP-only que transporta la credencial.
const CookieToken = "token"

// LocalEmail key del email verificado en c.Locals.
const LocalEmail = "email"

// AuthMiddleware valida la credencial firmada y deja el email verificado en
// c.Locals. La credencial viaja preferentemente en la cookie; se acepta
// Authorization: Bearer como fallback para clientes no-browser.
//
// No se consulta ninguna lista de revocación: un token robado sigue siendo
// válido hasta su expiración. Limitación aceptada, no un bug.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "credencial requerida"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// extractToken busca la credencial: primero la cookie, luego el header.
func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(CookieToken); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
