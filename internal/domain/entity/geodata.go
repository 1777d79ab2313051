package entity

import "github.com/cemdis/cemdis-api/internal/domain/geo"

// Tipos de proyecto de construcción (dataset externo de demanda).
const (
	ProjectInfrastructure = "infrastructure"
	ProjectIndustrial     = "industrial"
	ProjectResidential    = "residential"
)

// DemandSample intensidad de demanda observada/proyectada en un punto y período.
// Alimentada por el feed de analítica de mercado; solo lectura para el scoring.
type DemandSample struct {
	Point     geo.Point
	Intensity float64 // >= 0
	Region    string
	Period    string // ej. "2026-Q1"
}

// ProjectSite proyecto de construcción activo que impulsa demanda de cemento.
type ProjectSite struct {
	ID          string
	Name        string
	Point       geo.Point
	Kind        string // infrastructure, industrial, residential
	DemandScore float64
}

// Road vía principal representada como lista ordenada de vértices.
// Las consultas de cercanía usan el vértice más próximo, no la distancia real
// punto-segmento (aproximación heredada del dataset de origen).
type Road struct {
	ID       string
	Name     string
	Vertices []geo.Point
}
