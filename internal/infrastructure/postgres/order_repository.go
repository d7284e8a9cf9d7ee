package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
	"github.com/jhoicas/garments-tracker-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// El diario de producción vive en production_updates, ordenado por un
// bigserial (seq) que preserva el orden exacto de inserción.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, buyer_email, order_price, items, status, payment_status, approved_at, created_at`

// Create persiste un pedido nuevo con sus líneas embebidas (jsonb).
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, buyer_email, order_price, items, status, payment_status, approved_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		order.ID, order.BuyerEmail, order.OrderPrice, order.Items,
		order.Status, order.PaymentStatus, order.ApprovedAt, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido con su diario de producción. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.BuyerEmail, &o.OrderPrice, &o.Items,
		&o.Status, &o.PaymentStatus, &o.ApprovedAt, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	updates, err := r.listProductionUpdates(ctx, id)
	if err != nil {
		return nil, err
	}
	o.ProductionUpdates = updates
	return &o, nil
}

// ListByBuyer lista los pedidos de un comprador, más recientes primero.
func (r *OrderRepo) ListByBuyer(ctx context.Context, email string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE buyer_email = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, email)
}

// ListAll lista todos los pedidos, más recientes primero.
func (r *OrderRepo) ListAll(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListByStatus lista pedidos por status, más recientes primero.
func (r *OrderRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.BuyerEmail, &o.OrderPrice, &o.Items,
			&o.Status, &o.PaymentStatus, &o.ApprovedAt, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus reemplaza status y approved_at en una sola escritura, de modo
// que la invariante (approved_at no nulo sii status = approved) se mantiene
// a nivel de fila.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string, approvedAt *time.Time) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2, approved_at = $3 WHERE id = $1`,
		id, status, approvedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetPaymentStatus marca el estado de pago. Solo lo invoca el webhook.
func (r *OrderRepo) SetPaymentStatus(ctx context.Context, id, paymentStatus string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE orders SET payment_status = $2 WHERE id = $1`,
		id, paymentStatus,
	)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendProductionUpdate inserta una entrada nueva del diario. Las entradas
// nunca se actualizan ni se borran.
func (r *OrderRepo) AppendProductionUpdate(ctx context.Context, update *entity.ProductionUpdate) error {
	query := `
		INSERT INTO production_updates (id, order_id, stage, note, updated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		update.ID, update.OrderID, update.Stage, update.Note, update.UpdatedBy, update.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert production update: %w", err)
	}
	return nil
}

// listProductionUpdates carga el diario en orden de inserción (seq).
func (r *OrderRepo) listProductionUpdates(ctx context.Context, orderID string) ([]entity.ProductionUpdate, error) {
	query := `
		SELECT id, order_id, stage, note, updated_by, created_at
		FROM production_updates WHERE order_id = $1 ORDER BY seq`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list production updates: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductionUpdate
	for rows.Next() {
		var u entity.ProductionUpdate
		if err := rows.Scan(&u.ID, &u.OrderID, &u.Stage, &u.Note, &u.UpdatedBy, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production update: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
