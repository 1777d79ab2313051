package operations

import (
	"context"

	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la decisión del
// pedido y el descuento de inventario de la bodega.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error
}
