package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/geo"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

var _ repository.GeodataRepository = (*GeodataRepo)(nil)

// GeodataRepo lectura de los datasets geográficos de referencia.
//
// Esquema:
//
//	demand_samples(lat, lng, intensity, region, period)
//	project_sites(id, name, lat, lng, kind, demand_score)
//	roads(id, name) + road_vertices(road_id, seq, lat, lng)
//
// Son datasets de solo lectura para la API; los carga un proceso ETL aparte.
type GeodataRepo struct {
	pool *pgxpool.Pool
}

// NewGeodataRepository construye el adaptador de datos geográficos.
func NewGeodataRepository(pool *pgxpool.Pool) *GeodataRepo {
	return &GeodataRepo{pool: pool}
}

// ListDemandSamples muestras de demanda; period vacío devuelve todos los períodos.
func (r *GeodataRepo) ListDemandSamples(ctx context.Context, period string) ([]entity.DemandSample, error) {
	query := `
		SELECT lat, lng, intensity, region, period
		FROM demand_samples
		WHERE ($1 = '' OR period = $1)`
	rows, err := r.pool.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("list demand samples: %w", err)
	}
	defer rows.Close()
	var samples []entity.DemandSample
	for rows.Next() {
		var s entity.DemandSample
		if err := rows.Scan(&s.Point.Lat, &s.Point.Lng, &s.Intensity, &s.Region, &s.Period); err != nil {
			return nil, fmt.Errorf("scan demand sample: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// ListProjects proyectos de construcción activos.
func (r *GeodataRepo) ListProjects(ctx context.Context) ([]entity.ProjectSite, error) {
	query := `SELECT id, name, lat, lng, kind, demand_score FROM project_sites`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list project sites: %w", err)
	}
	defer rows.Close()
	var projects []entity.ProjectSite
	for rows.Next() {
		var p entity.ProjectSite
		if err := rows.Scan(&p.ID, &p.Name, &p.Point.Lat, &p.Point.Lng, &p.Kind, &p.DemandScore); err != nil {
			return nil, fmt.Errorf("scan project site: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListRoads vías principales con sus vértices ordenados por seq.
func (r *GeodataRepo) ListRoads(ctx context.Context) ([]entity.Road, error) {
	query := `
		SELECT r.id, r.name, v.lat, v.lng
		FROM roads r
		JOIN road_vertices v ON v.road_id = r.id
		ORDER BY r.id, v.seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roads: %w", err)
	}
	defer rows.Close()

	var roads []entity.Road
	index := map[string]int{}
	for rows.Next() {
		var id, name string
		var lat, lng float64
		if err := rows.Scan(&id, &name, &lat, &lng); err != nil {
			return nil, fmt.Errorf("scan road vertex: %w", err)
		}
		i, ok := index[id]
		if !ok {
			roads = append(roads, entity.Road{ID: id, Name: name})
			i = len(roads) - 1
			index[id] = i
		}
		roads[i].Vertices = append(roads[i].Vertices, geo.Point{Lat: lat, Lng: lng})
	}
	return roads, rows.Err()
}
