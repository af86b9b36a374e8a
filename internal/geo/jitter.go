package geo

import (
	"math"
	"math/rand"
)

// One degree of latitude is roughly 111.32 km everywhere; a degree of
// longitude shrinks by cos(latitude) towards the poles.
const kmPerDegreeLat = 111.32

// Point is a plain lat/lon pair.
type Point struct {
	Lat float64
	Lon float64
}

// NearbyPoint returns a randomized point whose offset from the base is
// uniform in degree space up to maxKm. Used to synthesize plausible guide
// positions for demo data; real position pings replace this in production.
func NearbyPoint(r *rand.Rand, baseLat, baseLon, maxKm float64) Point {
	maxLat := maxKm / kmPerDegreeLat
	maxLon := maxKm / (kmPerDegreeLat * math.Cos(degToRad(baseLat)))

	latOffset := (r.Float64()*2 - 1) * maxLat
	lonOffset := (r.Float64()*2 - 1) * maxLon

	return Point{
		Lat: baseLat + latOffset,
		Lon: baseLon + lonOffset,
	}
}
