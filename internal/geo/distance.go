package geo

import (
	"math"

	"lifesaver/internal/domain"
)

const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points given in
// degrees, using the haversine formula.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding near antipodes can push a just past 1
	a = math.Max(0, math.Min(1, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance is DistanceKm over two coordinates.
func Distance(from, to domain.Coordinate) float64 {
	return DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
