package dto

import "github.com/shopspring/decimal"

// CreatePaymentIntentRequest monto en unidades mayores (ej. 19.99 USD).
// OrderID es opcional: si viene, viaja como metadata al procesador y el
// webhook lo usa para marcar el pedido como pagado.
type CreatePaymentIntentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	OrderID  string          `json:"orderId,omitempty"`
}

// CreatePaymentIntentResponse solo el secreto que necesita el cliente para
// completar el pago; nada más del intent sale del servidor.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
