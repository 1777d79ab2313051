package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de distribuidor.
const (
	OrderPending  = "pending"
	OrderApproved = "approved"
	OrderRejected = "rejected"
)

// Order pedido de cemento levantado por un distribuidor (autoservicio).
// El flujo es pending -> approved|rejected; la aprobación la hace operaciones
// y descuenta inventario de la bodega asignada en la misma transacción.
type Order struct {
	ID            string
	DistributorID string
	ProductID     string
	WarehouseID   string
	Tons          decimal.Decimal
	Status        string // pending, approved, rejected
	Notes         string
	DecidedBy     string // userID del operador que aprobó/rechazó
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
