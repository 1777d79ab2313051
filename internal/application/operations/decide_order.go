package operations

import (
	"context"
	"time"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/application/usecase"
	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

// DecideOrderUseCase aprueba o rechaza pedidos pendientes de forma transaccional.
// La aprobación bloquea la fila de la bodega (SELECT FOR UPDATE), valida el
// inventario disponible y lo descuenta en la misma transacción; Commit o
// Rollback los hace TxRunner.Run.
type DecideOrderUseCase struct {
	txRunner TxRunner
}

// NewDecideOrderUseCase construye el caso de uso.
func NewDecideOrderUseCase(txRunner TxRunner) *DecideOrderUseCase {
	return &DecideOrderUseCase{txRunner: txRunner}
}

// Approve aprueba el pedido y descuenta las toneladas de la bodega asignada.
// Devuelve ErrOrderNotPending si otro operador ya lo decidió y
// ErrInsufficientStock si la bodega no cubre el tonelaje.
func (uc *DecideOrderUseCase) Approve(ctx context.Context, orderID, operatorID string, in dto.DecideOrderRequest) (*dto.OrderResponse, error) {
	var out *dto.OrderResponse
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		order, err := orderRepo.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPending {
			return domain.ErrOrderNotPending
		}

		warehouse, err := warehouseRepo.GetByIDForUpdate(ctx, order.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if warehouse.StockTons.LessThan(order.Tons) {
			return domain.ErrInsufficientStock
		}
		if err := warehouseRepo.AdjustStock(ctx, warehouse.ID, order.Tons.Neg()); err != nil {
			return err
		}

		decide(order, entity.OrderApproved, operatorID, in.Notes)
		if err := orderRepo.Update(ctx, order); err != nil {
			return err
		}
		out = usecase.ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject rechaza el pedido sin tocar inventario.
func (uc *DecideOrderUseCase) Reject(ctx context.Context, orderID, operatorID string, in dto.DecideOrderRequest) (*dto.OrderResponse, error) {
	var out *dto.OrderResponse
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.WarehouseRepository,
	) error {
		order, err := orderRepo.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPending {
			return domain.ErrOrderNotPending
		}
		decide(order, entity.OrderRejected, operatorID, in.Notes)
		if err := orderRepo.Update(ctx, order); err != nil {
			return err
		}
		out = usecase.ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decide(order *entity.Order, status, operatorID, notes string) {
	now := time.Now()
	order.Status = status
	order.DecidedBy = operatorID
	order.DecidedAt = &now
	order.UpdatedAt = now
	if notes != "" {
		order.Notes = notes
	}
}
