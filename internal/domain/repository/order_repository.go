package repository

import (
	"context"
	"time"

	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y su diario
// de producción. GetByID carga el diario; los listados no (solo cabeceras).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByBuyer(ctx context.Context, email string) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Order, error)
	// UpdateStatus reemplaza status y approved_at en una sola escritura.
	UpdateStatus(ctx context.Context, id, status string, approvedAt *time.Time) error
	// SetPaymentStatus lo usa únicamente el webhook de pagos.
	SetPaymentStatus(ctx context.Context, id, paymentStatus string) error
	// AppendProductionUpdate agrega una entrada al diario; nunca edita.
	AppendProductionUpdate(ctx context.Context, update *entity.ProductionUpdate) error
}
