package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/garments-tracker-api/internal/application/analytics"
	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
)

// AdminHandler expone el resumen del panel administrativo.
type AdminHandler struct {
	uc *analytics.StatsUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *analytics.StatsUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Stats godoc
// @Summary      Resumen administrativo
// @Description  Conteos aproximados por colección y revenue de pedidos pagados.
// @Tags         admin
// @Security     CookieAuth
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin-stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
