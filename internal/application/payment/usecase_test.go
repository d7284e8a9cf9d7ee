package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/application/payment"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos del procesador
// ──────────────────────────────────────────────────────────────────────────────

type fakeIntentCreator struct {
	lastAmountMinor int64
	lastCurrency    string
	lastOrderID     string
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amountMinor int64, currency, orderID string) (string, error) {
	f.lastAmountMinor = amountMinor
	f.lastCurrency = currency
	f.lastOrderID = orderID
	return "pi_test_secret_123", nil
}

type fakeVerifier struct {
	event payment.Event
	err   error
}

func (f fakeVerifier) VerifyEvent(_ []byte, _ string) (payment.Event, error) {
	return f.event, f.err
}

type fakeMarker struct {
	markedID     string
	markedStatus string
}

func (f *fakeMarker) SetPaymentStatus(_ context.Context, id, status string) error {
	f.markedID = id
	f.markedStatus = status
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateIntent — conversión a unidades menores
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateIntent_ConvierteAUnidadesMenores(t *testing.T) {
	intents := &fakeIntentCreator{}
	uc := payment.NewUseCase(intents, fakeVerifier{}, &fakeMarker{})

	out, err := uc.CreateIntent(context.Background(), dto.CreatePaymentIntentRequest{
		Amount:  decimal.RequireFromString("19.99"),
		OrderID: "order-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1999), intents.lastAmountMinor, "19.99 son 1999 centavos")
	assert.Equal(t, "usd", intents.lastCurrency, "la moneda defaultea a usd")
	assert.Equal(t, "order-1", intents.lastOrderID)
	assert.Equal(t, "pi_test_secret_123", out.ClientSecret, "solo el clientSecret sale al cliente")
}

func TestCreateIntent_RedondeaAlCentavoMasCercano(t *testing.T) {
	intents := &fakeIntentCreator{}
	uc := payment.NewUseCase(intents, fakeVerifier{}, &fakeMarker{})

	_, err := uc.CreateIntent(context.Background(), dto.CreatePaymentIntentRequest{
		Amount: decimal.RequireFromString("10.005"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), intents.lastAmountMinor)
}

func TestCreateIntent_MontoNoPositivo_EsEntradaInvalida(t *testing.T) {
	uc := payment.NewUseCase(&fakeIntentCreator{}, fakeVerifier{}, &fakeMarker{})

	for _, amount := range []string{"0", "-5"} {
		_, err := uc.CreateIntent(context.Background(), dto.CreatePaymentIntentRequest{
			Amount: decimal.RequireFromString(amount),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto %s debe rechazarse", amount)
	}
}

func TestMinorUnits(t *testing.T) {
	cases := map[string]int64{
		"19.99":  1999,
		"100":    10000,
		"0.01":   1,
		"249.50": 24950,
	}
	for in, want := range cases {
		assert.Equal(t, want, payment.MinorUnits(decimal.RequireFromString(in)), "monto %s", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// HandleEvent — webhook del procesador
// ──────────────────────────────────────────────────────────────────────────────

func TestHandleEvent_SucceededMarcaElPedidoPagado(t *testing.T) {
	marker := &fakeMarker{}
	uc := payment.NewUseCase(&fakeIntentCreator{}, fakeVerifier{
		event: payment.Event{Type: "payment_intent.succeeded", OrderID: "order-1"},
	}, marker)

	err := uc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)

	assert.Equal(t, "order-1", marker.markedID)
	assert.Equal(t, entity.PaymentStatusPaid, marker.markedStatus)
}

func TestHandleEvent_FirmaInvalida_EsEntradaInvalida(t *testing.T) {
	uc := payment.NewUseCase(&fakeIntentCreator{}, fakeVerifier{
		err: errors.New("firma rota"),
	}, &fakeMarker{})

	err := uc.HandleEvent(context.Background(), []byte("{}"), "sig-mala")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHandleEvent_OtroTipoDeEvento_SeIgnora(t *testing.T) {
	marker := &fakeMarker{}
	uc := payment.NewUseCase(&fakeIntentCreator{}, fakeVerifier{
		event: payment.Event{Type: "payment_intent.created", OrderID: "order-1"},
	}, marker)

	err := uc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)

	assert.Empty(t, marker.markedID, "solo succeeded muta pedidos")
}

func TestHandleEvent_SucceededSinOrderID_SeIgnora(t *testing.T) {
	marker := &fakeMarker{}
	uc := payment.NewUseCase(&fakeIntentCreator{}, fakeVerifier{
		event: payment.Event{Type: "payment_intent.succeeded"},
	}, marker)

	err := uc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)

	assert.Empty(t, marker.markedID, "un pago fuera del flujo de pedidos no muta nada")
}
