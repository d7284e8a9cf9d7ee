package payment

import "context"

// IntentCreator puerto hacia el procesador de pagos: crea un payment intent
// por un monto en unidades menores y devuelve el secreto para el cliente.
// Implementado en infrastructure/stripe.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency, orderID string) (clientSecret string, err error)
}

// Event evento ya verificado del procesador. OrderID viene de la metadata
// del intent y puede estar vacío.
type Event struct {
	Type    string
	OrderID string
}

// EventVerifier valida la firma de un webhook y decodifica el evento.
type EventVerifier interface {
	VerifyEvent(payload []byte, signature string) (Event, error)
}

// OrderMarker lo implementa el repositorio de pedidos: es la única vía por
// la que un pago confirmado toca un pedido.
type OrderMarker interface {
	SetPaymentStatus(ctx context.Context, id, paymentStatus string) error
}
