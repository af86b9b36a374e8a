package geo

import "math"

const earthRadiusKm = 6371.0

func degToRad(d float64) float64 {
	return d * (math.Pi / 180)
}

// DistanceKm returns the great-circle distance in kilometers between two
// points using the Haversine formula. NaN inputs propagate as NaN; callers
// validate coordinates beforehand.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLon := degToRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidCoordinates reports whether lat/lon fall within the WGS84 ranges.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
