// Package geo contiene las primitivas geográficas del dominio: puntos,
// distancia de círculo máximo y búsqueda del vecino más cercano.
package geo

import "math"

// earthRadiusKm radio medio de la Tierra en kilómetros (haversine).
const earthRadiusKm = 6371.0

// Point coordenada geográfica inmutable (latitud/longitud en grados).
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HaversineKm distancia de círculo máximo entre dos puntos, en kilómetros.
func HaversineKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// NearestKm distancia al punto más cercano de la colección.
// Colección vacía => +Inf (no hay vecino; el llamador decide cómo degradar).
func NearestKm(from Point, points []Point) float64 {
	min := math.Inf(1)
	for _, p := range points {
		if d := HaversineKm(from, p); d < min {
			min = d
		}
	}
	return min
}
