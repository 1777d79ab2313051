package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Address      string          `json:"address"`
	Lat          float64         `json:"lat" validate:"min=-90,max=90"`
	Lng          float64         `json:"lng" validate:"min=-180,max=180"`
	CapacityTons decimal.Decimal `json:"capacity_tons"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Address      *string          `json:"address"`
	CapacityTons *decimal.Decimal `json:"capacity_tons"`
}

// RegisterStockMovementRequest movimiento de inventario de una bodega.
// Type: "in" (entrada de planta) | "out" (despacho manual/ajuste).
type RegisterStockMovementRequest struct {
	Type string          `json:"type" validate:"required,oneof=in out"`
	Tons decimal.Decimal `json:"tons" validate:"required"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Lat          float64         `json:"lat"`
	Lng          float64         `json:"lng"`
	CapacityTons decimal.Decimal `json:"capacity_tons"`
	StockTons    decimal.Decimal `json:"stock_tons"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
