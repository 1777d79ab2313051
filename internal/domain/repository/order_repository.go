package repository

import (
	"context"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para los pedidos de distribuidor.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetByIDForUpdate bloquea la fila del pedido; usar solo dentro de una tx.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, o *entity.Order) error
	ListByDistributor(ctx context.Context, distributorID string, limit, offset int) ([]*entity.Order, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error)
}
