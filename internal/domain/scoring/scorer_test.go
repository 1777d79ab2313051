package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/geo"
)

// Candidato de referencia para los tests (Bogotá).
var candidate = geo.Point{Lat: 4.6097, Lng: -74.0817}

// kmPerDegLat kilómetros por grado de latitud con R=6371 (2*pi*R/360).
const kmPerDegLat = 6371.0 * math.Pi / 180.0

// northOf devuelve un punto desplazado `km` al norte; con longitud constante la
// distancia haversine es exactamente R*dLat, así que los tests de umbral son precisos.
func northOf(p geo.Point, km float64) geo.Point {
	return geo.Point{Lat: p.Lat + km/kmPerDegLat, Lng: p.Lng}
}

func demandAt(km, intensity float64) entity.DemandSample {
	return entity.DemandSample{Point: northOf(candidate, km), Intensity: intensity, Region: "cundinamarca", Period: "2026-Q1"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Determinismo y degradación sin referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestScore_EsDeterminista(t *testing.T) {
	refs := Refs{
		Demand:       []entity.DemandSample{demandAt(1.0, 70), demandAt(4.0, 30)},
		Distributors: []entity.Distributor{{Location: northOf(candidate, 5)}},
		Projects:     []entity.ProjectSite{{Point: northOf(candidate, 2), Kind: entity.ProjectResidential}},
		Roads:        []entity.Road{{Vertices: []geo.Point{northOf(candidate, 1)}}},
	}
	a := Score(candidate, refs)
	b := Score(candidate, refs)
	assert.Equal(t, a, b, "misma entrada debe producir resultado idéntico")
}

func TestScore_SinReferencias_Degrada(t *testing.T) {
	res := Score(candidate, Refs{})

	assert.Equal(t, 0, res.DemandScore, "sin muestras de demanda el score de demanda es 0")
	assert.True(t, math.IsInf(res.Metrics.DistanceToRoadKm, 1), "sin vías la distancia es +Inf")
	assert.True(t, math.IsInf(res.Metrics.DistanceToProjectKm, 1))
	assert.True(t, math.IsInf(res.Metrics.DistanceToDistributorKm, 1))
	assert.True(t, math.IsInf(res.Metrics.DistanceToWarehouseKm, 1))
	assert.Equal(t, LevelLow, res.Risks.OverlapDistributor)
	assert.Equal(t, LevelLow, res.Risks.NearWarehouse)

	// Base 45, sin bonos, y la penalización de vía lejana (-10) aplica con +Inf.
	assert.Equal(t, 35, res.Score)
	assert.Equal(t, NotRecommended, res.Recommendation)
	assert.False(t, res.Metrics.TruckAccess)
	assert.Equal(t, LevelLow, res.Metrics.ResidentialDensity)
	assert.Equal(t, 0, res.Metrics.PotentialSalesTonsYear)
}

// ──────────────────────────────────────────────────────────────────────────────
// Demanda local
// ──────────────────────────────────────────────────────────────────────────────

func TestScore_DemandScore_PromedioDentroDe6Km(t *testing.T) {
	refs := Refs{Demand: []entity.DemandSample{
		demandAt(1.0, 80),
		demandAt(5.5, 40),
		demandAt(9.0, 100), // fuera del radio de 6km: no cuenta
	}}
	res := Score(candidate, refs)
	assert.Equal(t, 60, res.DemandScore, "promedio de 80 y 40; la muestra a 9km se ignora")
}

func TestScore_DemandScore_SeAcotaA100(t *testing.T) {
	refs := Refs{Demand: []entity.DemandSample{demandAt(1.0, 250)}}
	res := Score(candidate, refs)
	assert.Equal(t, 100, res.DemandScore)
}

func TestScore_DemandScore_NoDecreceAlSubirIntensidad(t *testing.T) {
	base := Refs{Demand: []entity.DemandSample{demandAt(2.0, 40)}}
	more := Refs{Demand: []entity.DemandSample{demandAt(2.0, 65)}}

	lo := Score(candidate, base)
	hi := Score(candidate, more)
	assert.GreaterOrEqual(t, hi.DemandScore, lo.DemandScore,
		"más intensidad dentro del radio nunca baja el score de demanda")
	assert.GreaterOrEqual(t, hi.Score, lo.Score)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de riesgo por distancia (bordes inclusivos)
// ──────────────────────────────────────────────────────────────────────────────

func TestRiskFromDistance_Bordes(t *testing.T) {
	assert.Equal(t, LevelHigh, RiskFromDistance(4.0, 4, 7), "el borde alto es inclusivo")
	assert.Equal(t, LevelMedium, RiskFromDistance(4.01, 4, 7))
	assert.Equal(t, LevelMedium, RiskFromDistance(7.0, 4, 7), "el borde medio es inclusivo")
	assert.Equal(t, LevelLow, RiskFromDistance(7.01, 4, 7))
	assert.Equal(t, LevelLow, RiskFromDistance(math.Inf(1), 4, 7))
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo
// ──────────────────────────────────────────────────────────────────────────────

// Una muestra de demanda 80 a 2km, distribuidor a 3km, proyecto a 2.5km, vía a
// 1km, sin bodegas: score = round(45 + 80*0.55 + 12 + 6 - 18 - 0) = 89, pero la
// recomendación se fuerza a moderate porque el riesgo de solape es alto.
func TestScore_EscenarioCompleto(t *testing.T) {
	refs := Refs{
		Demand:       []entity.DemandSample{demandAt(2.0, 80)},
		Distributors: []entity.Distributor{{ID: "d1", Location: northOf(candidate, 3.0)}},
		Projects:     []entity.ProjectSite{{ID: "p1", Point: northOf(candidate, 2.5), Kind: entity.ProjectInfrastructure}},
		Roads:        []entity.Road{{ID: "r1", Vertices: []geo.Point{northOf(candidate, 1.0)}}},
	}

	res := Score(candidate, refs)

	require.Equal(t, 80, res.DemandScore)
	assert.Equal(t, 89, res.Score)
	assert.Equal(t, LevelHigh, res.Risks.OverlapDistributor, "distribuidor a 3km (<=4) es riesgo alto")
	assert.Equal(t, LevelLow, res.Risks.NearWarehouse)
	assert.Equal(t, LevelMedium, res.Risks.Cannibalization, "solape alto con demanda >=60 queda en medio")
	assert.Equal(t, Moderate, res.Recommendation,
		"score >=75 con un riesgo alto no puede ser highly_recommended")

	assert.True(t, res.Metrics.TruckAccess, "vía a 1km (<=1.5) da acceso de camión")
	assert.Equal(t, LevelHigh, res.Metrics.ResidentialDensity)
	// Ventas potenciales: demanda <=3km (80) * 12 + demandScore (80) * 8 = 1600
	assert.Equal(t, 1600, res.Metrics.PotentialSalesTonsYear)
}

func TestScore_SitioAltamenteRecomendado(t *testing.T) {
	// Demanda fuerte, proyecto cercano, vía cercana y competencia lejana.
	refs := Refs{
		Demand:       []entity.DemandSample{demandAt(1.0, 90), demandAt(2.0, 70)},
		Distributors: []entity.Distributor{{Location: northOf(candidate, 12.0)}},
		Warehouses:   []entity.Warehouse{{Location: northOf(candidate, 10.0)}},
		Projects:     []entity.ProjectSite{{Point: northOf(candidate, 2.0)}},
		Roads:        []entity.Road{{Vertices: []geo.Point{northOf(candidate, 0.5)}}},
	}

	res := Score(candidate, refs)

	// demandScore = 80; score = round(45 + 44 + 12 + 6) = 107 -> acotado a 100
	assert.Equal(t, 80, res.DemandScore)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, LevelLow, res.Risks.OverlapDistributor)
	assert.Equal(t, LevelLow, res.Risks.NearWarehouse)
	assert.Equal(t, LevelLow, res.Risks.Cannibalization)
	assert.Equal(t, HighlyRecommended, res.Recommendation)
}

func TestScore_PenalizacionPorViaLejana(t *testing.T) {
	near := Refs{Roads: []entity.Road{{Vertices: []geo.Point{northOf(candidate, 2.5)}}}}
	far := Refs{Roads: []entity.Road{{Vertices: []geo.Point{northOf(candidate, 5.0)}}}}

	// 45 - 6 (vía entre 2 y 3 km) = 39 vs 45 - 10 (vía >=3km) = 35
	assert.Equal(t, 39, Score(candidate, near).Score)
	assert.Equal(t, 35, Score(candidate, far).Score)
}

func TestScore_RiesgoBodegaCercana(t *testing.T) {
	refs := Refs{Warehouses: []entity.Warehouse{{Location: northOf(candidate, 4.5)}}}
	res := Score(candidate, refs)
	assert.Equal(t, LevelHigh, res.Risks.NearWarehouse, "bodega a 4.5km (<=5) es riesgo alto")

	refs.Warehouses[0].Location = northOf(candidate, 7.5)
	res = Score(candidate, refs)
	assert.Equal(t, LevelMedium, res.Risks.NearWarehouse)
}

func TestScore_CanibalizacionAlta(t *testing.T) {
	// Solape alto + demanda débil (<60) => canibalización alta.
	refs := Refs{
		Demand:       []entity.DemandSample{demandAt(1.0, 40)},
		Distributors: []entity.Distributor{{Location: northOf(candidate, 2.0)}},
	}
	res := Score(candidate, refs)
	assert.Equal(t, LevelHigh, res.Risks.OverlapDistributor)
	assert.Equal(t, LevelHigh, res.Risks.Cannibalization)
}
