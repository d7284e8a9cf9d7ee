// Package payment es el puente hacia el procesador de pagos externo:
// traduce montos a unidades menores para crear intents, y procesa los
// eventos de confirmación que marcan pedidos como pagados.
package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
)

const defaultCurrency = "usd"

// eventPaymentSucceeded es el único tipo de evento que muta un pedido.
const eventPaymentSucceeded = "payment_intent.succeeded"

var centsPerUnit = decimal.NewFromInt(100)

// UseCase puente de pagos.
type UseCase struct {
	intents  IntentCreator
	verifier EventVerifier
	orders   OrderMarker
}

// NewUseCase construye el puente.
func NewUseCase(intents IntentCreator, verifier EventVerifier, orders OrderMarker) *UseCase {
	return &UseCase{intents: intents, verifier: verifier, orders: orders}
}

// CreateIntent valida el monto, lo convierte a unidades menores
// (×100, redondeado al entero más cercano) y delega en el procesador.
// Solo el clientSecret sale hacia el cliente.
func (uc *UseCase) CreateIntent(ctx context.Context, in dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	amountMinor := MinorUnits(in.Amount)
	secret, err := uc.intents.CreateIntent(ctx, amountMinor, currency, in.OrderID)
	if err != nil {
		return nil, fmt.Errorf("payment: crear intent: %w", err)
	}
	return &dto.CreatePaymentIntentResponse{ClientSecret: secret}, nil
}

// HandleEvent procesa un webhook ya leído del body. Un evento con firma
// inválida es entrada inválida; un succeeded sin order_id en metadata se
// ignora (el pago ocurrió fuera del flujo de pedidos).
func (uc *UseCase) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	ev, err := uc.verifier.VerifyEvent(payload, signature)
	if err != nil {
		return domain.ErrInvalidInput
	}
	if ev.Type != eventPaymentSucceeded || ev.OrderID == "" {
		return nil
	}
	if err := uc.orders.SetPaymentStatus(ctx, ev.OrderID, entity.PaymentStatusPaid); err != nil {
		return fmt.Errorf("payment: marcar pedido pagado: %w", err)
	}
	return nil
}

// MinorUnits convierte un monto en unidades mayores a la denominación
// mínima del procesador (ej. 19.99 -> 1999).
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(centsPerUnit).Round(0).IntPart()
}
