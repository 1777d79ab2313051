package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDistributorRequest alta de un punto de distribución.
type CreateDistributorRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	Region           string          `json:"region"`
	Lat              float64         `json:"lat" validate:"min=-90,max=90"`
	Lng              float64         `json:"lng" validate:"min=-180,max=180"`
	CoverageRadiusKm float64         `json:"coverage_radius_km" validate:"min=0"`
	CapacityTons     decimal.Decimal `json:"capacity_tons"`
}

// UpdateDistributorRequest cambios parciales de un distribuidor.
type UpdateDistributorRequest struct {
	Name             *string          `json:"name"`
	Region           *string          `json:"region"`
	CoverageRadiusKm *float64         `json:"coverage_radius_km"`
	CapacityTons     *decimal.Decimal `json:"capacity_tons"`
	Status           *string          `json:"status"`
}

// DistributorResponse salida de un distribuidor.
type DistributorResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Region           string          `json:"region"`
	Lat              float64         `json:"lat"`
	Lng              float64         `json:"lng"`
	CoverageRadiusKm float64         `json:"coverage_radius_km"`
	CapacityTons     decimal.Decimal `json:"capacity_tons"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// DistributorListResponse lista paginada de distribuidores.
type DistributorListResponse struct {
	Items []DistributorResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
