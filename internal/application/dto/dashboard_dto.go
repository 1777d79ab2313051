package dto

import "github.com/shopspring/decimal"

// ExecutiveSummaryDTO respuesta de GET /api/executive/summary.
// KPIs del mes en curso para la vista ejecutiva.
type ExecutiveSummaryDTO struct {
	// Métricas del mes en curso (día 1 – hoy), solo pedidos aprobados
	MonthTons    decimal.Decimal `json:"month_tons"`    // toneladas despachadas
	MonthRevenue decimal.Decimal `json:"month_revenue"` // ingresos a precio de lista

	// Backlog operativo
	PendingOrders int `json:"pending_orders"`

	// Top distribuidores por tonelaje del mes (mayor a menor)
	TopDistributors []TopDistributorDTO `json:"top_distributors"`

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// TopDistributorDTO fila del ranking de distribuidores del mes.
type TopDistributorDTO struct {
	DistributorID  string          `json:"distributor_id"`
	Name           string          `json:"name"`
	Region         string          `json:"region"`
	OrderCount     int             `json:"order_count"`
	TonsDispatched decimal.Decimal `json:"tons_dispatched"`
	Revenue        decimal.Decimal `json:"revenue"`
}
