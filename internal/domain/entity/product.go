package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product referencia de cemento comercializada (gris uso general, estructural, blanco...).
type Product struct {
	ID          string
	SKU         string
	Name        string
	PricePerTon decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
