package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/geo"
	"github.com/cemdis/cemdis-api/internal/domain/scoring"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios de referencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeGeodataRepo struct {
	demand   []entity.DemandSample
	projects []entity.ProjectSite
	roads    []entity.Road
	err      error
}

func (f *fakeGeodataRepo) ListDemandSamples(_ context.Context, period string) ([]entity.DemandSample, error) {
	if f.err != nil {
		return nil, f.err
	}
	if period == "" {
		return f.demand, nil
	}
	var out []entity.DemandSample
	for _, s := range f.demand {
		if s.Period == period {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeGeodataRepo) ListProjects(context.Context) ([]entity.ProjectSite, error) {
	return f.projects, f.err
}

func (f *fakeGeodataRepo) ListRoads(context.Context) ([]entity.Road, error) {
	return f.roads, f.err
}

type fakeDistributorRepo struct {
	active []entity.Distributor
}

func (f *fakeDistributorRepo) Create(context.Context, *entity.Distributor) error { return nil }
func (f *fakeDistributorRepo) GetByID(context.Context, string) (*entity.Distributor, error) {
	return nil, nil
}
func (f *fakeDistributorRepo) Update(context.Context, *entity.Distributor) error { return nil }
func (f *fakeDistributorRepo) List(context.Context, int, int) ([]*entity.Distributor, error) {
	return nil, nil
}
func (f *fakeDistributorRepo) ListActive(context.Context) ([]entity.Distributor, error) {
	return f.active, nil
}
func (f *fakeDistributorRepo) Delete(context.Context, string) error { return nil }

type fakeWarehouseRepo struct {
	all []entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(context.Context, *entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(context.Context, string) (*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) GetByIDForUpdate(context.Context, string) (*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) Update(context.Context, *entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) AdjustStock(context.Context, string, decimal.Decimal) error {
	return nil
}
func (f *fakeWarehouseRepo) List(context.Context, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) ListAll(context.Context) ([]entity.Warehouse, error) {
	return f.all, nil
}
func (f *fakeWarehouseRepo) Delete(context.Context, string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_SinDatasets_Degrada(t *testing.T) {
	uc := NewSiteEvaluationUseCase(&fakeGeodataRepo{}, &fakeDistributorRepo{}, &fakeWarehouseRepo{})

	out, err := uc.Evaluate(context.Background(), dto.EvaluateSiteRequest{Lat: 4.6, Lng: -74.08})
	require.NoError(t, err, "datasets vacíos no son error")

	assert.Equal(t, 35, out.Score)
	assert.Equal(t, scoring.NotRecommended, out.Recommendation)
	assert.Nil(t, out.Metrics.DistanceToRoadKm, "sin vías la distancia serializa como null")
	assert.Nil(t, out.Metrics.DistanceToDistributorKm)
}

func TestEvaluate_CoordenadaInvalida(t *testing.T) {
	uc := NewSiteEvaluationUseCase(&fakeGeodataRepo{}, &fakeDistributorRepo{}, &fakeWarehouseRepo{})

	_, err := uc.Evaluate(context.Background(), dto.EvaluateSiteRequest{Lat: 95, Lng: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEvaluate_FalloDelRepositorio_Propaga(t *testing.T) {
	uc := NewSiteEvaluationUseCase(&fakeGeodataRepo{err: errors.New("db down")}, &fakeDistributorRepo{}, &fakeWarehouseRepo{})

	_, err := uc.Evaluate(context.Background(), dto.EvaluateSiteRequest{Lat: 4.6, Lng: -74.08})
	assert.Error(t, err)
}

func TestEvaluate_UsaLasReferenciasInyectadas(t *testing.T) {
	candidate := geo.Point{Lat: 4.6097, Lng: -74.0817}
	near := geo.Point{Lat: candidate.Lat + 0.009, Lng: candidate.Lng} // ~1km al norte

	uc := NewSiteEvaluationUseCase(
		&fakeGeodataRepo{
			demand: []entity.DemandSample{{Point: near, Intensity: 80, Period: "2026-Q1"}},
			roads:  []entity.Road{{Vertices: []geo.Point{near}}},
		},
		&fakeDistributorRepo{},
		&fakeWarehouseRepo{},
	)

	out, err := uc.Evaluate(context.Background(), dto.EvaluateSiteRequest{Lat: candidate.Lat, Lng: candidate.Lng})
	require.NoError(t, err)

	assert.Equal(t, 80, out.DemandScore)
	assert.True(t, out.Metrics.TruckAccess)
	require.NotNil(t, out.Metrics.DistanceToRoadKm)
	assert.InDelta(t, 1.0, *out.Metrics.DistanceToRoadKm, 0.05)

	// Filtro de período: sin muestras del período pedido, la demanda es cero
	out, err = uc.Evaluate(context.Background(), dto.EvaluateSiteRequest{Lat: candidate.Lat, Lng: candidate.Lng, Period: "2025-Q4"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.DemandScore)
}
