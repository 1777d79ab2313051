package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

var _ repository.DistributorRepository = (*DistributorRepo)(nil)

// DistributorRepo implementación del puerto DistributorRepository sobre PostgreSQL.
type DistributorRepo struct {
	q Querier
}

// NewDistributorRepository construye el adaptador de persistencia para distribuidores. Pasar pool o tx (Querier).
func NewDistributorRepository(q Querier) *DistributorRepo {
	return &DistributorRepo{q: q}
}

const distributorSelect = `
	SELECT id, name, region, lat, lng, coverage_radius_km, capacity_tons, status, created_at, updated_at
	FROM distributors`

// Create persiste un nuevo distribuidor.
func (r *DistributorRepo) Create(ctx context.Context, d *entity.Distributor) error {
	query := `
		INSERT INTO distributors (id, name, region, lat, lng, coverage_radius_km, capacity_tons, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Name, d.Region, d.Location.Lat, d.Location.Lng,
		d.CoverageRadiusKm, d.CapacityTons, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert distributor: %w", err)
	}
	return nil
}

// GetByID obtiene un distribuidor por ID.
func (r *DistributorRepo) GetByID(ctx context.Context, id string) (*entity.Distributor, error) {
	var d entity.Distributor
	err := r.q.QueryRow(ctx, distributorSelect+` WHERE id = $1`, id).Scan(
		&d.ID, &d.Name, &d.Region, &d.Location.Lat, &d.Location.Lng,
		&d.CoverageRadiusKm, &d.CapacityTons, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distributor: %w", err)
	}
	return &d, nil
}

// Update actualiza un distribuidor existente.
func (r *DistributorRepo) Update(ctx context.Context, d *entity.Distributor) error {
	query := `
		UPDATE distributors SET name = $2, region = $3, lat = $4, lng = $5,
			coverage_radius_km = $6, capacity_tons = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Name, d.Region, d.Location.Lat, d.Location.Lng,
		d.CoverageRadiusKm, d.CapacityTons, d.Status, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update distributor: %w", err)
	}
	return nil
}

// List lista distribuidores con paginación.
func (r *DistributorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Distributor, error) {
	query := distributorSelect + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list distributors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distributor
	for rows.Next() {
		var d entity.Distributor
		if err := rows.Scan(&d.ID, &d.Name, &d.Region, &d.Location.Lat, &d.Location.Lng,
			&d.CoverageRadiusKm, &d.CapacityTons, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListActive devuelve la red activa completa (capa de cobertura del mapa y refs del scoring).
func (r *DistributorRepo) ListActive(ctx context.Context) ([]entity.Distributor, error) {
	query := distributorSelect + ` WHERE status = 'active' ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active distributors: %w", err)
	}
	defer rows.Close()
	var list []entity.Distributor
	for rows.Next() {
		var d entity.Distributor
		if err := rows.Scan(&d.ID, &d.Name, &d.Region, &d.Location.Lat, &d.Location.Lng,
			&d.CoverageRadiusKm, &d.CapacityTons, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Delete elimina un distribuidor por ID.
func (r *DistributorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete distributor: %w", err)
	}
	return nil
}
