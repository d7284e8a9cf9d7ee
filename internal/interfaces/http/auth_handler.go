package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/garments-tracker-api/internal/application/auth"
	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
)

// AuthHandler emite y revoca la cookie de credencial.
type AuthHandler struct {
	uc            *auth.UseCase
	secureCookies bool // false solo en development
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, secureCookies bool) *AuthHandler {
	return &AuthHandler{uc: uc, secureCookies: secureCookies}
}

// IssueToken godoc
// @Summary      Emitir credencial
// @Description  Intercambia el claim de identidad por una cookie HTTP-only firmada (1 hora).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueTokenRequest  true  "Claim de identidad"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var in dto.IssueTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token, err := h.uc.Issue(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(h.credentialCookie(token, h.uc.MaxAge()))
	return c.JSON(fiber.Map{"success": true})
}

// Logout godoc
// @Summary      Revocar credencial
// @Description  Instruye al cliente a descartar la cookie de inmediato (max-age cero).
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	cookie := h.credentialCookie("", -1)
	cookie.Expires = time.Unix(0, 0)
	c.Cookie(cookie)
	return c.JSON(fiber.Map{"success": true})
}

// credentialCookie arma la cookie de credencial. SameSite=None exige Secure,
// así que en development se baja a Lax sin Secure.
func (h *AuthHandler) credentialCookie(token string, maxAge int) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteNoneMode
	if !h.secureCookies {
		sameSite = fiber.CookieSameSiteLaxMode
	}
	return &fiber.Cookie{
		Name:     CookieToken,
		Value:    token,
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: sameSite,
		Path:     "/",
	}
}
