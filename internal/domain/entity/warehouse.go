package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cemdis/cemdis-api/internal/domain/geo"
)

// Warehouse bodega/centro de despacho donde se almacena cemento a granel y en saco.
type Warehouse struct {
	ID           string
	Name         string
	Address      string
	Location     geo.Point
	CapacityTons decimal.Decimal
	StockTons    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
