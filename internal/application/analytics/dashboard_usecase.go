// Package analytics contiene los casos de uso del resumen ejecutivo de
// despachos y distribución.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

const summaryTopDistributors = 5 // número de filas del ranking de distribuidores

// DashboardUseCase genera el resumen del mes en curso para la vista ejecutiva.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a la tabla de pedidos; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el ExecutiveSummaryDTO del mes en curso.
//
// Tres llamadas en paralelo:
//  1. GetDispatchMetrics(mes)      → MonthTons + MonthRevenue
//  2. CountOrdersByStatus(pending) → PendingOrders
//  3. GetTopDistributors(mes, 5)   → TopDistributors
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.ExecutiveSummaryDTO, error) {
	now := time.Now()

	// ── Rango de fecha: día 1 a las 00:00 – hoy a las 23:59:59 ────────────────
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// ── Goroutines para paralelizar las 3 consultas DB ────────────────────────
	type metricsResult struct {
		tons    decimal.Decimal
		revenue decimal.Decimal
		err     error
	}
	type pendingResult struct {
		count int
		err   error
	}
	type topResult struct {
		rows []repository.TopDistributorResult
		err  error
	}

	metricsCh := make(chan metricsResult, 1)
	pendingCh := make(chan pendingResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		tons, revenue, err := uc.analyticsRepo.GetDispatchMetrics(ctx, monthStart, monthEnd)
		metricsCh <- metricsResult{tons, revenue, err}
	}()
	go func() {
		count, err := uc.analyticsRepo.CountOrdersByStatus(ctx, entity.OrderPending)
		pendingCh <- pendingResult{count, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopDistributors(ctx, monthStart, monthEnd, summaryTopDistributors)
		topCh <- topResult{rows, err}
	}()

	metrics := <-metricsCh
	pending := <-pendingCh
	top := <-topCh

	if metrics.err != nil {
		return nil, fmt.Errorf("resumen ejecutivo: métricas de despacho: %w", metrics.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("resumen ejecutivo: pedidos pendientes: %w", pending.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("resumen ejecutivo: top distribuidores: %w", top.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	topDTOs := make([]dto.TopDistributorDTO, 0, len(top.rows))
	for _, row := range top.rows {
		topDTOs = append(topDTOs, dto.TopDistributorDTO{
			DistributorID:  row.DistributorID,
			Name:           row.Name,
			Region:         row.Region,
			OrderCount:     row.OrderCount,
			TonsDispatched: row.TonsDispatched.Round(2),
			Revenue:        row.Revenue.Round(2),
		})
	}

	return &dto.ExecutiveSummaryDTO{
		MonthTons:       metrics.tons.Round(2),
		MonthRevenue:    metrics.revenue.Round(2),
		PendingOrders:   pending.count,
		TopDistributors: topDTOs,
		DateLabel:       monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
