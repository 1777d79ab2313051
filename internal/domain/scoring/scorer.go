// Package scoring implementa la heurística de factibilidad para ubicar nuevos
// distribuidores (servicio de dominio puro: sin I/O, sin estado, determinista).
//
// El llamador entrega los datasets de referencia; colecciones vacías degradan a
// "sin contribución" (demanda cero, distancia infinita) y nunca producen error.
package scoring

import (
	"math"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/geo"
)

// Niveles de riesgo y de densidad residencial.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Niveles de recomendación del sitio candidato.
const (
	NotRecommended    = "not_recommended"
	Moderate          = "moderate"
	HighlyRecommended = "highly_recommended"
)

// Constantes de negocio de la heurística. Son valores fijos calibrados con el
// histórico comercial; no se parametrizan por configuración.
const (
	demandRadiusKm     = 6.0 // radio para el promedio de demanda local
	nearDemandRadiusKm = 3.0 // radio para la suma de demanda cercana (ventas potenciales)

	baseScore    = 45.0
	demandWeight = 0.55

	projectBonusNearKm = 3.0 // <=3km: +12
	projectBonusFarKm  = 6.0 // <=6km: +6
	roadBonusKm        = 1.5 // <=1.5km: +6 y acceso de camión

	overlapHighKm   = 4.0 // distribuidor a <=4km: -18 y riesgo alto
	overlapMediumKm = 7.0 // distribuidor a <=7km: -8 y riesgo medio

	roadPenaltyFarKm = 3.0 // vía a >=3km: -10
	roadPenaltyMidKm = 2.0 // vía a >=2km: -6

	warehouseHighKm   = 5.0
	warehouseMediumKm = 8.0
)

// Refs datasets de referencia para evaluar un candidato. Solo lectura.
type Refs struct {
	Demand       []entity.DemandSample
	Distributors []entity.Distributor
	Warehouses   []entity.Warehouse
	Projects     []entity.ProjectSite
	Roads        []entity.Road
}

// Metrics métricas de soporte del resultado. Las distancias pueden ser +Inf
// cuando el dataset correspondiente está vacío.
type Metrics struct {
	DistanceToRoadKm        float64
	DistanceToProjectKm     float64
	DistanceToDistributorKm float64
	DistanceToWarehouseKm   float64
	PotentialSalesTonsYear  int
	TruckAccess             bool
	ResidentialDensity      string // low, medium, high
}

// Risks riesgos clasificados del sitio candidato.
type Risks struct {
	OverlapDistributor string
	NearWarehouse      string
	Cannibalization    string
}

// Result resultado completo de la evaluación de un sitio.
type Result struct {
	Score          int // 0-100
	Recommendation string
	DemandScore    int // 0-100
	Metrics        Metrics
	Risks          Risks
}

// Score evalúa el punto candidato contra los datasets de referencia.
// Función total y determinista: misma entrada, mismo resultado.
func Score(candidate geo.Point, refs Refs) Result {
	// Demanda local: promedio <=6km para el score, suma <=3km para ventas potenciales.
	var sumLocal, countLocal, sumNear float64
	for _, s := range refs.Demand {
		d := geo.HaversineKm(candidate, s.Point)
		if d <= demandRadiusKm {
			sumLocal += s.Intensity
			countLocal++
		}
		if d <= nearDemandRadiusKm {
			sumNear += s.Intensity
		}
	}
	demandScore := 0
	if countLocal > 0 {
		demandScore = clampInt(int(math.Round(sumLocal/countLocal)), 0, 100)
	}

	projectKm := geo.NearestKm(candidate, projectPoints(refs.Projects))
	distributorKm := geo.NearestKm(candidate, distributorPoints(refs.Distributors))
	warehouseKm := geo.NearestKm(candidate, warehousePoints(refs.Warehouses))
	roadKm := geo.NearestKm(candidate, roadVertices(refs.Roads))

	var bonusProject float64
	switch {
	case projectKm <= projectBonusNearKm:
		bonusProject = 12
	case projectKm <= projectBonusFarKm:
		bonusProject = 6
	}

	var bonusRoad float64
	if roadKm <= roadBonusKm {
		bonusRoad = 6
	}

	var penaltyOverlap float64
	switch {
	case distributorKm <= overlapHighKm:
		penaltyOverlap = 18
	case distributorKm <= overlapMediumKm:
		penaltyOverlap = 8
	}

	var penaltyRoad float64
	switch {
	case roadKm >= roadPenaltyFarKm:
		penaltyRoad = 10
	case roadKm >= roadPenaltyMidKm:
		penaltyRoad = 6
	}

	raw := baseScore + float64(demandScore)*demandWeight + bonusProject + bonusRoad - penaltyOverlap - penaltyRoad
	score := clampInt(int(math.Round(raw)), 0, 100)

	risks := Risks{
		OverlapDistributor: RiskFromDistance(distributorKm, overlapHighKm, overlapMediumKm),
		NearWarehouse:      RiskFromDistance(warehouseKm, warehouseHighKm, warehouseMediumKm),
	}
	switch {
	case risks.OverlapDistributor == LevelHigh && demandScore < 60:
		risks.Cannibalization = LevelHigh
	case risks.OverlapDistributor != LevelLow || demandScore < 50:
		risks.Cannibalization = LevelMedium
	default:
		risks.Cannibalization = LevelLow
	}

	recommendation := NotRecommended
	switch {
	case score >= 75 && !anyHigh(risks):
		recommendation = HighlyRecommended
	case score >= 55:
		recommendation = Moderate
	}

	density := LevelLow
	switch {
	case demandScore >= 70:
		density = LevelHigh
	case demandScore >= 50:
		density = LevelMedium
	}

	return Result{
		Score:          score,
		Recommendation: recommendation,
		DemandScore:    demandScore,
		Metrics: Metrics{
			DistanceToRoadKm:        roadKm,
			DistanceToProjectKm:     projectKm,
			DistanceToDistributorKm: distributorKm,
			DistanceToWarehouseKm:   warehouseKm,
			PotentialSalesTonsYear:  int(math.Round(sumNear*12 + float64(demandScore)*8)),
			TruckAccess:             roadKm <= roadBonusKm,
			ResidentialDensity:      density,
		},
		Risks: risks,
	}
}

// RiskFromDistance regla compartida de clasificación por distancia:
// d <= high => high; d <= medium => medium; si no, low. Inclusivo en los bordes.
func RiskFromDistance(d, highKm, mediumKm float64) string {
	switch {
	case d <= highKm:
		return LevelHigh
	case d <= mediumKm:
		return LevelMedium
	default:
		return LevelLow
	}
}

func anyHigh(r Risks) bool {
	return r.OverlapDistributor == LevelHigh || r.NearWarehouse == LevelHigh || r.Cannibalization == LevelHigh
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func projectPoints(ps []entity.ProjectSite) []geo.Point {
	out := make([]geo.Point, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Point)
	}
	return out
}

func distributorPoints(ds []entity.Distributor) []geo.Point {
	out := make([]geo.Point, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Location)
	}
	return out
}

func warehousePoints(ws []entity.Warehouse) []geo.Point {
	out := make([]geo.Point, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Location)
	}
	return out
}

// roadVertices aplana las vías a sus vértices: la cercanía a una vía se
// aproxima por el vértice más próximo, no por el segmento real.
func roadVertices(roads []entity.Road) []geo.Point {
	var out []geo.Point
	for _, r := range roads {
		out = append(out, r.Vertices...)
	}
	return out
}
