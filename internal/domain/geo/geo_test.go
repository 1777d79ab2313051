package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_PuntoConsigoMismo(t *testing.T) {
	p := Point{Lat: 4.6097, Lng: -74.0817}
	assert.Equal(t, 0.0, HaversineKm(p, p))
}

func TestHaversineKm_EsSimetrica(t *testing.T) {
	a := Point{Lat: 4.6097, Lng: -74.0817}  // Bogotá
	b := Point{Lat: 6.2442, Lng: -75.5812}  // Medellín
	assert.InDelta(t, HaversineKm(a, b), HaversineKm(b, a), 1e-9)
}

func TestHaversineKm_UnGradoDeLatitud(t *testing.T) {
	// Con R=6371, un grado de latitud son ~111.195 km en cualquier meridiano.
	a := Point{Lat: 0, Lng: -74}
	b := Point{Lat: 1, Lng: -74}
	assert.InDelta(t, 111.195, HaversineKm(a, b), 0.01)
}

func TestNearestKm_ColeccionVacia_RetornaInfinito(t *testing.T) {
	from := Point{Lat: 4.6, Lng: -74.0}
	assert.True(t, math.IsInf(NearestKm(from, nil), 1))
	assert.True(t, math.IsInf(NearestKm(from, []Point{}), 1))
}

func TestNearestKm_EligeElMasCercano(t *testing.T) {
	from := Point{Lat: 4.6, Lng: -74.0}
	points := []Point{
		{Lat: 4.9, Lng: -74.0},
		{Lat: 4.61, Lng: -74.0},
		{Lat: 5.5, Lng: -74.0},
	}
	got := NearestKm(from, points)
	assert.InDelta(t, HaversineKm(from, points[1]), got, 1e-9)
}
