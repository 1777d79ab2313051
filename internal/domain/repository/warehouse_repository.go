package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(ctx context.Context, w *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una tx.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Warehouse, error)
	Update(ctx context.Context, w *entity.Warehouse) error
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error)
	// ListAll devuelve todas las bodegas (capa de referencia para el scoring).
	ListAll(ctx context.Context) ([]entity.Warehouse, error)
	Delete(ctx context.Context, id string) error
}
