package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

// OrderUseCase creación y consulta de pedidos de distribuidor.
// La aprobación/rechazo (transaccional, descuenta inventario) vive en
// operations.DecideOrderUseCase.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, productRepo: productRepo}
}

// Create levanta un pedido en estado pending a nombre del distribuidor del token.
func (uc *OrderUseCase) Create(ctx context.Context, distributorID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if distributorID == "" || in.ProductID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Tons.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	o := &entity.Order{
		ID:            uuid.New().String(),
		DistributorID: distributorID,
		ProductID:     in.ProductID,
		WarehouseID:   in.WarehouseID,
		Tons:          in.Tons,
		Status:        entity.OrderPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// GetByID obtiene un pedido. Un distribuidor solo puede ver los suyos
// (ownDistributorID vacío = consulta interna sin restricción).
func (uc *OrderUseCase) GetByID(ctx context.Context, id, ownDistributorID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	if ownDistributorID != "" && o.DistributorID != ownDistributorID {
		return nil, domain.ErrForbidden
	}
	return ToOrderResponse(o), nil
}

// ListByDistributor pedidos del distribuidor (autoservicio).
func (uc *OrderUseCase) ListByDistributor(ctx context.Context, distributorID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByDistributor(ctx, distributorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

// ListByStatus pedidos por estado (cola de aprobación de operaciones).
func (uc *OrderUseCase) ListByStatus(ctx context.Context, status string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

func toOrderList(list []*entity.Order, limit, offset int) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

// ToOrderResponse mapea la entidad al DTO de salida.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		DistributorID: o.DistributorID,
		ProductID:     o.ProductID,
		WarehouseID:   o.WarehouseID,
		Tons:          o.Tons,
		Status:        o.Status,
		Notes:         o.Notes,
		DecidedBy:     o.DecidedBy,
		DecidedAt:     o.DecidedAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
