package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest pedido levantado por un distribuidor.
type CreateOrderRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Tons        decimal.Decimal `json:"tons" validate:"required"`
	Notes       string          `json:"notes"`
}

// DecideOrderRequest notas opcionales al aprobar/rechazar un pedido.
type DecideOrderRequest struct {
	Notes string `json:"notes"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string          `json:"id"`
	DistributorID string          `json:"distributor_id"`
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	Tons          decimal.Decimal `json:"tons"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	DecidedBy     string          `json:"decided_by,omitempty"`
	DecidedAt     *time.Time      `json:"decided_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
