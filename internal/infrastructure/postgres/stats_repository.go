package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
	"github.com/jhoicas/garments-tracker-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el panel administrativo.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountEntities devuelve conteos aproximados por tabla leyendo las
// estimaciones del planificador (pg_class.reltuples). Son eventualmente
// consistentes: se refrescan con ANALYZE/autovacuum, no con cada insert.
// GREATEST(0, ...) porque reltuples vale -1 en tablas nunca analizadas.
func (r *StatsRepo) CountEntities(ctx context.Context) (repository.EntityCounts, error) {
	const query = `
	SELECT relname, GREATEST(0, reltuples)::BIGINT
	FROM pg_class
	WHERE relname IN ('users', 'products', 'orders')`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return repository.EntityCounts{}, fmt.Errorf("stats.CountEntities: %w", err)
	}
	defer rows.Close()

	var counts repository.EntityCounts
	for rows.Next() {
		var name string
		var estimate int64
		if err := rows.Scan(&name, &estimate); err != nil {
			return repository.EntityCounts{}, fmt.Errorf("stats.CountEntities scan: %w", err)
		}
		switch name {
		case "users":
			counts.Users = estimate
		case "products":
			counts.Products = estimate
		case "orders":
			counts.Orders = estimate
		}
	}
	return counts, rows.Err()
}

// PaidRevenue suma order_price sobre los pedidos pagados. COALESCE devuelve
// cero cuando no hay ninguno (no es un error).
func (r *StatsRepo) PaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(order_price), 0)
	FROM orders
	WHERE payment_status = $1`

	var revenue decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, entity.PaymentStatusPaid).Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("stats.PaidRevenue: %w", err)
	}
	return revenue, nil
}
