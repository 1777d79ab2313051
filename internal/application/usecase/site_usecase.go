package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/geo"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
	"github.com/cemdis/cemdis-api/internal/domain/scoring"
)

// SiteEvaluationUseCase evalúa sitios candidatos para nuevos distribuidores.
// Carga los datasets de referencia desde los repositorios y los inyecta al
// motor de scoring puro; ningún dataset vive como estado global del proceso.
type SiteEvaluationUseCase struct {
	geodataRepo     repository.GeodataRepository
	distributorRepo repository.DistributorRepository
	warehouseRepo   repository.WarehouseRepository
}

// NewSiteEvaluationUseCase construye el caso de uso de planeación.
func NewSiteEvaluationUseCase(
	geodataRepo repository.GeodataRepository,
	distributorRepo repository.DistributorRepository,
	warehouseRepo repository.WarehouseRepository,
) *SiteEvaluationUseCase {
	return &SiteEvaluationUseCase{
		geodataRepo:     geodataRepo,
		distributorRepo: distributorRepo,
		warehouseRepo:   warehouseRepo,
	}
}

// Evaluate carga las referencias y puntúa el candidato.
// Los datasets vacíos no son error: el scoring degrada a "sin contribución".
func (uc *SiteEvaluationUseCase) Evaluate(ctx context.Context, in dto.EvaluateSiteRequest) (*dto.SiteScoreResponse, error) {
	if in.Lat < -90 || in.Lat > 90 || in.Lng < -180 || in.Lng > 180 {
		return nil, domain.ErrInvalidInput
	}

	demand, err := uc.geodataRepo.ListDemandSamples(ctx, in.Period)
	if err != nil {
		return nil, fmt.Errorf("planning: demanda: %w", err)
	}
	projects, err := uc.geodataRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("planning: proyectos: %w", err)
	}
	roads, err := uc.geodataRepo.ListRoads(ctx)
	if err != nil {
		return nil, fmt.Errorf("planning: vías: %w", err)
	}
	distributors, err := uc.distributorRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("planning: distribuidores: %w", err)
	}
	warehouses, err := uc.warehouseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("planning: bodegas: %w", err)
	}

	res := scoring.Score(geo.Point{Lat: in.Lat, Lng: in.Lng}, scoring.Refs{
		Demand:       demand,
		Distributors: distributors,
		Warehouses:   warehouses,
		Projects:     projects,
		Roads:        roads,
	})

	return toSiteScoreResponse(res), nil
}

func toSiteScoreResponse(r scoring.Result) *dto.SiteScoreResponse {
	return &dto.SiteScoreResponse{
		Score:          r.Score,
		Recommendation: r.Recommendation,
		DemandScore:    r.DemandScore,
		Metrics: dto.SiteMetricsDTO{
			DistanceToRoadKm:        finiteKm(r.Metrics.DistanceToRoadKm),
			DistanceToProjectKm:     finiteKm(r.Metrics.DistanceToProjectKm),
			DistanceToDistributorKm: finiteKm(r.Metrics.DistanceToDistributorKm),
			DistanceToWarehouseKm:   finiteKm(r.Metrics.DistanceToWarehouseKm),
			PotentialSalesTonsYear:  r.Metrics.PotentialSalesTonsYear,
			TruckAccess:             r.Metrics.TruckAccess,
			ResidentialDensity:      r.Metrics.ResidentialDensity,
		},
		Risks: dto.SiteRisksDTO{
			OverlapDistributor: r.Risks.OverlapDistributor,
			NearWarehouse:      r.Risks.NearWarehouse,
			Cannibalization:    r.Risks.Cannibalization,
		},
	}
}

// finiteKm redondea a 2 decimales y traduce +Inf (dataset vacío) a null JSON.
func finiteKm(d float64) *float64 {
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return nil
	}
	v := math.Round(d*100) / 100
	return &v
}
