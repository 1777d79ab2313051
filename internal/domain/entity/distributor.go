package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cemdis/cemdis-api/internal/domain/geo"
)

// Distributor punto de venta existente de la red de distribución.
// CoverageRadiusKm es el radio de servicio declarado; CapacityTons la capacidad
// mensual de despacho.
type Distributor struct {
	ID               string
	Name             string
	Region           string
	Location         geo.Point
	CoverageRadiusKm float64
	CapacityTons     decimal.Decimal
	Status           string // active, inactive
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
