package repository

import (
	"context"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para las referencias de cemento.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
