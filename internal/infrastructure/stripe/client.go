// Package stripe adapta el procesador de pagos externo a los puertos de
// application/payment. El resto del sistema nunca toca el SDK.
package stripe

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"

	"github.com/jhoicas/garments-tracker-api/internal/application/payment"
)

var _ payment.IntentCreator = (*Client)(nil)

// Client crea payment intents contra la API de Stripe.
type Client struct{}

// NewClient configura la llave global del SDK y construye el adaptador.
func NewClient(secretKey string) *Client {
	stripe.Key = secretKey
	return &Client{}
}

// CreateIntent crea un payment intent por el monto en unidades menores y
// devuelve el client secret. El order id viaja como metadata para que el
// webhook pueda cerrar el ciclo.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency, orderID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if orderID != "" {
		params.AddMetadata("order_id", orderID)
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: crear payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
