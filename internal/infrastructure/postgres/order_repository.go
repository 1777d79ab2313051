package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderSelect = `
	SELECT id, distributor_id, product_id, warehouse_id, tons, status,
		COALESCE(notes, ''), COALESCE(decided_by, ''), decided_at, created_at, updated_at
	FROM orders`

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, distributor_id, product_id, warehouse_id, tons, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.DistributorID, o.ProductID, o.WarehouseID, o.Tons, o.Status, o.Notes,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate obtiene el pedido y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción; evita doble decisión concurrente.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.getByID(ctx, id, true)
}

func (r *OrderRepo) getByID(ctx context.Context, id string, forUpdate bool) (*entity.Order, error) {
	query := orderSelect + ` WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.DistributorID, &o.ProductID, &o.WarehouseID, &o.Tons, &o.Status,
		&o.Notes, &o.DecidedBy, &o.DecidedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Update actualiza un pedido (estado, decisión y notas).
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, notes = NULLIF($3, ''), decided_by = NULLIF($4, ''),
			decided_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Status, o.Notes, o.DecidedBy, o.DecidedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ListByDistributor pedidos de un distribuidor, más recientes primero.
func (r *OrderRepo) ListByDistributor(ctx context.Context, distributorID string, limit, offset int) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE distributor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, distributorID, limit, offset)
}

// ListByStatus pedidos por estado, más antiguos primero (cola de aprobación FIFO).
func (r *OrderRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE status = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, status, limit, offset)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.DistributorID, &o.ProductID, &o.WarehouseID, &o.Tons,
			&o.Status, &o.Notes, &o.DecidedBy, &o.DecidedAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
