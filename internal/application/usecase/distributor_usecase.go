package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/geo"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

// DistributorUseCase casos de uso CRUD para la red de distribución.
type DistributorUseCase struct {
	repo repository.DistributorRepository
}

// NewDistributorUseCase construye el caso de uso.
func NewDistributorUseCase(repo repository.DistributorRepository) *DistributorUseCase {
	return &DistributorUseCase{repo: repo}
}

// Create da de alta un distribuidor.
func (uc *DistributorUseCase) Create(ctx context.Context, in dto.CreateDistributorRequest) (*dto.DistributorResponse, error) {
	now := time.Now()
	d := &entity.Distributor{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Region:           in.Region,
		Location:         geo.Point{Lat: in.Lat, Lng: in.Lng},
		CoverageRadiusKm: in.CoverageRadiusKm,
		CapacityTons:     in.CapacityTons,
		Status:           "active",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDistributorResponse(d), nil
}

// GetByID obtiene un distribuidor por ID.
func (uc *DistributorUseCase) GetByID(ctx context.Context, id string) (*dto.DistributorResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDistributorResponse(d), nil
}

// Update actualiza un distribuidor.
func (uc *DistributorUseCase) Update(ctx context.Context, id string, in dto.UpdateDistributorRequest) (*dto.DistributorResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Region != nil {
		d.Region = *in.Region
	}
	if in.CoverageRadiusKm != nil {
		d.CoverageRadiusKm = *in.CoverageRadiusKm
	}
	if in.CapacityTons != nil {
		d.CapacityTons = *in.CapacityTons
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDistributorResponse(d), nil
}

// List lista distribuidores con paginación.
func (uc *DistributorUseCase) List(ctx context.Context, limit, offset int) (*dto.DistributorListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DistributorResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDistributorResponse(d))
	}
	return &dto.DistributorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un distribuidor por ID.
func (uc *DistributorUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toDistributorResponse(d *entity.Distributor) *dto.DistributorResponse {
	if d == nil {
		return nil
	}
	return &dto.DistributorResponse{
		ID:               d.ID,
		Name:             d.Name,
		Region:           d.Region,
		Lat:              d.Location.Lat,
		Lng:              d.Location.Lng,
		CoverageRadiusKm: d.CoverageRadiusKm,
		CapacityTons:     d.CapacityTons,
		Status:           d.Status,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
