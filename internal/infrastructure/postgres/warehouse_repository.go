package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseSelect = `
	SELECT id, name, address, lat, lng, capacity_tons, stock_tons, created_at, updated_at
	FROM warehouses`

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, address, lat, lng, capacity_tons, stock_tons, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		w.ID, w.Name, w.Address, w.Location.Lat, w.Location.Lng,
		w.CapacityTons, w.StockTons, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate obtiene la bodega y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *WarehouseRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Warehouse, error) {
	return r.getByID(ctx, id, true)
}

func (r *WarehouseRepo) getByID(ctx context.Context, id string, forUpdate bool) (*entity.Warehouse, error) {
	query := warehouseSelect + ` WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Address, &w.Location.Lat, &w.Location.Lng,
		&w.CapacityTons, &w.StockTons, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Update actualiza una bodega existente (no toca stock_tons; eso va por AdjustStock).
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2, address = $3, lat = $4, lng = $5,
			capacity_tons = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		w.ID, w.Name, w.Address, w.Location.Lat, w.Location.Lng, w.CapacityTons, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// AdjustStock suma delta (puede ser negativo) al inventario de la bodega.
func (r *WarehouseRepo) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error {
	query := `UPDATE warehouses SET stock_tons = stock_tons + $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista bodegas con paginación.
func (r *WarehouseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	query := warehouseSelect + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.Location.Lat, &w.Location.Lng,
			&w.CapacityTons, &w.StockTons, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// ListAll devuelve todas las bodegas (capa de referencia del scoring).
func (r *WarehouseRepo) ListAll(ctx context.Context) ([]entity.Warehouse, error) {
	rows, err := r.q.Query(ctx, warehouseSelect+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list all warehouses: %w", err)
	}
	defer rows.Close()
	var list []entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.Location.Lat, &w.Location.Lng,
			&w.CapacityTons, &w.StockTons, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Delete elimina una bodega por ID.
func (r *WarehouseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
