package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de una referencia de cemento.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	PricePerTon decimal.Decimal `json:"price_per_ton"`
}

// UpdateProductRequest cambios parciales de una referencia.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	PricePerTon *decimal.Decimal `json:"price_per_ton"`
	Active      *bool            `json:"active"`
}

// ProductResponse salida de una referencia de cemento.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	PricePerTon decimal.Decimal `json:"price_per_ton"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de referencias.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
