package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el resumen ejecutivo de despachos.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDispatchMetrics devuelve toneladas despachadas e ingresos a precio de lista
// de los pedidos aprobados cuya decisión cae en el período.
// Usa COALESCE para devolver cero si no hay filas (período sin despachos).
func (r *AnalyticsRepo) GetDispatchMetrics(
	ctx context.Context,
	startDate, endDate time.Time,
) (tons, revenue decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(o.tons),                   0) AS tons,
	    COALESCE(SUM(o.tons * p.price_per_ton), 0) AS revenue
	FROM orders o
	JOIN products p ON p.id = o.product_id
	WHERE o.status = 'approved'
	  AND o.decided_at BETWEEN $1 AND $2`

	err = r.pool.QueryRow(ctx, query, startDate, endDate).Scan(&tons, &revenue)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetDispatchMetrics: %w", err)
	}
	return tons, revenue, nil
}

// CountOrdersByStatus cuenta los pedidos en un estado (backlog operativo).
func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountOrdersByStatus: %w", err)
	}
	return count, nil
}

// GetTopDistributors devuelve los `limit` distribuidores con mayor tonelaje
// aprobado en el período, de mayor a menor.
func (r *AnalyticsRepo) GetTopDistributors(
	ctx context.Context,
	startDate, endDate time.Time,
	limit int,
) ([]repository.TopDistributorResult, error) {
	const query = `
	SELECT
	    d.id                                        AS distributor_id,
	    d.name,
	    d.region,
	    COUNT(o.id)                                 AS order_count,
	    SUM(o.tons)                                 AS tons_dispatched,
	    SUM(o.tons * p.price_per_ton)               AS revenue
	FROM orders o
	JOIN distributors d ON d.id = o.distributor_id
	JOIN products     p ON p.id = o.product_id
	WHERE o.status = 'approved'
	  AND o.decided_at BETWEEN $1 AND $2
	GROUP BY d.id, d.name, d.region
	ORDER BY tons_dispatched DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopDistributors: %w", err)
	}
	defer rows.Close()

	var results []repository.TopDistributorResult
	for rows.Next() {
		var row repository.TopDistributorResult
		if err := rows.Scan(
			&row.DistributorID,
			&row.Name,
			&row.Region,
			&row.OrderCount,
			&row.TonsDispatched,
			&row.Revenue,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetTopDistributors scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopDistributors rows: %w", err)
	}
	if results == nil {
		results = []repository.TopDistributorResult{}
	}
	return results, nil
}
