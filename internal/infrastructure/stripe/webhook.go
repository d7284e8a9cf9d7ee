package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/jhoicas/garments-tracker-api/internal/application/payment"
)

var _ payment.EventVerifier = (*WebhookVerifier)(nil)

// WebhookVerifier valida la firma Stripe-Signature de los eventos entrantes
// con el signing secret del endpoint.
type WebhookVerifier struct {
	secret string
}

// NewWebhookVerifier construye el verificador.
func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// VerifyEvent valida firma y timestamp del payload y extrae el order_id de
// la metadata del objeto del evento (si existe).
func (v *WebhookVerifier) VerifyEvent(payload []byte, signature string) (payment.Event, error) {
	ev, err := webhook.ConstructEvent(payload, signature, v.secret)
	if err != nil {
		return payment.Event{}, fmt.Errorf("stripe: firma de webhook inválida: %w", err)
	}
	var obj struct {
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(ev.Data.Raw, &obj); err != nil {
		return payment.Event{}, fmt.Errorf("stripe: decodificar evento: %w", err)
	}
	return payment.Event{
		Type:    string(ev.Type),
		OrderID: obj.Metadata["order_id"],
	}, nil
}
