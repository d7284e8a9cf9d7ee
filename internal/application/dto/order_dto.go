package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
)

// CreateOrderRequest entrada para crear un pedido. Status y PaymentStatus
// se aceptan del cliente y solo se defaultean cuando vienen vacíos; esa
// confianza en el caller es deliberadamente la del sistema original.
type CreateOrderRequest struct {
	BuyerEmail    string             `json:"buyerEmail"`
	OrderPrice    decimal.Decimal    `json:"orderPrice"`
	Items         []entity.OrderItem `json:"items"`
	Status        string             `json:"status,omitempty"`
	PaymentStatus string             `json:"paymentStatus,omitempty"`
}

// CreateOrderResponse id del pedido insertado.
type CreateOrderResponse struct {
	InsertedID string `json:"insertedId"`
}

// UpdateOrderStatusRequest transición de estado vía patch administrativo.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ProductionUpdateRequest nueva entrada del diario de producción.
type ProductionUpdateRequest struct {
	Stage     string `json:"stage"`
	Note      string `json:"note"`
	UpdatedBy string `json:"updatedBy"`
}

// ProductionUpdateResponse entrada del diario.
type ProductionUpdateResponse struct {
	Stage     string    `json:"stage"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy string    `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderResponse salida de un pedido. ProductionUpdates solo se llena en la
// consulta por id; los listados devuelven cabeceras.
type OrderResponse struct {
	ID                string                     `json:"id"`
	BuyerEmail        string                     `json:"buyerEmail"`
	OrderPrice        decimal.Decimal            `json:"orderPrice"`
	Items             []entity.OrderItem         `json:"items,omitempty"`
	Status            string                     `json:"status"`
	PaymentStatus     string                     `json:"paymentStatus"`
	ApprovedAt        *time.Time                 `json:"approvedAt"`
	ProductionUpdates []ProductionUpdateResponse `json:"productionUpdates,omitempty"`
	CreatedAt         time.Time                  `json:"createdAt"`
}
