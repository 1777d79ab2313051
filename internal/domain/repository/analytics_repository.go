package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopDistributorResult fila del ranking de distribuidores por tonelaje despachado.
type TopDistributorResult struct {
	DistributorID  string
	Name           string
	Region         string
	OrderCount     int
	TonsDispatched decimal.Decimal
	Revenue        decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el reporte ejecutivo.
type AnalyticsRepository interface {
	// GetDispatchMetrics tonelaje despachado e ingresos de pedidos aprobados en el período.
	GetDispatchMetrics(ctx context.Context, startDate, endDate time.Time) (tons, revenue decimal.Decimal, err error)
	CountOrdersByStatus(ctx context.Context, status string) (int, error)
	GetTopDistributors(ctx context.Context, startDate, endDate time.Time, limit int) ([]TopDistributorResult, error)
}
