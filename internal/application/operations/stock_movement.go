package operations

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

// Tipos de movimiento manual de inventario de bodega.
const (
	MovementIn  = "in"  // entrada desde planta
	MovementOut = "out" // despacho manual / ajuste
)

// StockMovementUseCase registra entradas/salidas manuales de inventario con
// bloqueo de fila, validando que una salida no deje la bodega en negativo y
// que una entrada no supere la capacidad declarada.
type StockMovementUseCase struct {
	txRunner TxRunner
}

// NewStockMovementUseCase construye el caso de uso.
func NewStockMovementUseCase(txRunner TxRunner) *StockMovementUseCase {
	return &StockMovementUseCase{txRunner: txRunner}
}

// Register aplica el movimiento sobre la bodega y devuelve el inventario resultante.
func (uc *StockMovementUseCase) Register(ctx context.Context, warehouseID string, in dto.RegisterStockMovementRequest) (*dto.WarehouseResponse, error) {
	if warehouseID == "" || !in.Tons.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var delta decimal.Decimal
	switch in.Type {
	case MovementIn:
		delta = in.Tons
	case MovementOut:
		delta = in.Tons.Neg()
	default:
		return nil, domain.ErrInvalidInput
	}

	var out *dto.WarehouseResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		w, err := warehouseRepo.GetByIDForUpdate(ctx, warehouseID)
		if err != nil {
			return err
		}
		if w == nil {
			return domain.ErrNotFound
		}
		newStock := w.StockTons.Add(delta)
		if newStock.LessThan(decimal.Zero) {
			return domain.ErrInsufficientStock
		}
		if w.CapacityTons.GreaterThan(decimal.Zero) && newStock.GreaterThan(w.CapacityTons) {
			return domain.ErrConflict
		}
		if err := warehouseRepo.AdjustStock(ctx, warehouseID, delta); err != nil {
			return err
		}
		w.StockTons = newStock
		out = &dto.WarehouseResponse{
			ID:           w.ID,
			Name:         w.Name,
			Address:      w.Address,
			Lat:          w.Location.Lat,
			Lng:          w.Location.Lng,
			CapacityTons: w.CapacityTons,
			StockTons:    w.StockTons,
			CreatedAt:    w.CreatedAt,
			UpdatedAt:    w.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
