package repository

import (
	"context"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
)

// GeodataRepository puerto de lectura de los datasets de referencia geográfica
// (demanda, proyectos activos y vías principales) que alimentan el scoring y
// las capas del mapa de planeación.
type GeodataRepository interface {
	// ListDemandSamples filtra por período ("" = todos los períodos).
	ListDemandSamples(ctx context.Context, period string) ([]entity.DemandSample, error)
	ListProjects(ctx context.Context) ([]entity.ProjectSite, error)
	ListRoads(ctx context.Context) ([]entity.Road, error)
}
