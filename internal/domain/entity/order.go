package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido observados. El campo es un string abierto: cualquier
// transición reemplaza a cualquier otra, sin tabla de transiciones.
const (
	OrderStatusPending  = "pending"
	OrderStatusApproved = "approved"
	OrderStatusRejected = "rejected"
)

// Estados de pago. Lo marca el webhook del procesador, nunca una ruta de
// pedidos; no hay enlace forzado entre status y payment_status.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Order es un pedido de confección. ApprovedAt se deriva del status en cada
// transición: no nulo si y solo si el status es exactamente "approved".
type Order struct {
	ID                string
	BuyerEmail        string
	OrderPrice        decimal.Decimal
	Items             []OrderItem
	Status            string
	PaymentStatus     string
	ApprovedAt        *time.Time
	ProductionUpdates []ProductionUpdate
	CreatedAt         time.Time
}

// OrderItem es una línea del pedido tal como la envía el cliente.
type OrderItem struct {
	ProductID string          `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ProductionUpdate es una entrada del diario de producción de un Order.
// El diario es append-only: nunca se edita ni se borra una entrada.
type ProductionUpdate struct {
	ID        string
	OrderID   string
	Stage     string
	Note      string
	UpdatedBy string
	CreatedAt time.Time
}
