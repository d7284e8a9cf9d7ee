package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/application/payment"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
)

// PaymentHandler maneja la creación de intents y el webhook del procesador.
type PaymentHandler struct {
	uc *payment.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payment.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateIntent godoc
// @Summary      Crear intent de pago
// @Description  Convierte el monto a unidades menores y devuelve únicamente el clientSecret.
// @Tags         payments
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentIntentRequest  true  "Monto en unidades mayores"
// @Success      200   {object}  dto.CreatePaymentIntentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var in dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateIntent(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser positivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Webhook godoc
// @Summary      Webhook del procesador de pagos
// @Description  Verifica la firma del evento y marca el pedido como pagado en payment_intent.succeeded.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	if err := h.uc.HandleEvent(c.Context(), c.Body(), c.Get("Stripe-Signature")); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: "firma de evento inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"received": true})
}
