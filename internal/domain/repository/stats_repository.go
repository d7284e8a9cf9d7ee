package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// EntityCounts conteos aproximados por colección (estimaciones rápidas del
// planificador, no COUNT exactos).
type EntityCounts struct {
	Users    int64
	Products int64
	Orders   int64
}

// StatsRepository consultas de solo lectura para el panel administrativo.
type StatsRepository interface {
	CountEntities(ctx context.Context) (EntityCounts, error)
	// PaidRevenue suma order_price sobre los pedidos con payment_status
	// "paid". Sin filas devuelve cero, no error.
	PaidRevenue(ctx context.Context) (decimal.Decimal, error)
}
