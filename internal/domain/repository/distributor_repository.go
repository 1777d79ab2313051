package repository

import (
	"context"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
)

// DistributorRepository puerto de persistencia para Distributor.
type DistributorRepository interface {
	Create(ctx context.Context, d *entity.Distributor) error
	GetByID(ctx context.Context, id string) (*entity.Distributor, error)
	Update(ctx context.Context, d *entity.Distributor) error
	List(ctx context.Context, limit, offset int) ([]*entity.Distributor, error)
	// ListActive devuelve toda la red activa (capa de cobertura para el scoring y el mapa).
	ListActive(ctx context.Context) ([]entity.Distributor, error)
	Delete(ctx context.Context, id string) error
}
