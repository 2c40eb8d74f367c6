package domain

import "math"

// LightYearMeters - длина светового года в метрах
const LightYearMeters = 9460000000000000.0

// DistanceResult - расстояние между двумя системами в метрах и световых годах
type DistanceResult struct {
	Meters     float64 `json:"distance_meters"`
	LightYears float64 `json:"distance_lightyears"`
}

// Distance вычисляет евклидово расстояние между двумя системами
func Distance(a, b SolarSystem) DistanceResult {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	meters := math.Sqrt(dx*dx + dy*dy + dz*dz)

	return DistanceResult{
		Meters:     meters,
		LightYears: meters / LightYearMeters,
	}
}
