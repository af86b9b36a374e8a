package service

import (
	"sort"

	"wanderer/internal/geo"
	"wanderer/internal/model"
)

// RankedGuide pairs a guide with its distance from the search origin.
type RankedGuide struct {
	Guide      model.Snapshot `json:"guide"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	DistanceKm float64        `json:"distance_km"`
}

// rankNearby computes each guide's distance from the origin, drops guides
// without a known position, sorts ascending and keeps the closest topK.
// The result size is deterministic for a given topK; any variety the client
// wants is applied above this layer.
func rankNearby(origin geo.Point, guides []model.User, topK int) []RankedGuide {
	ranked := make([]RankedGuide, 0, len(guides))
	for i := range guides {
		g := &guides[i]
		if !g.HasLocation() {
			// soft skip: partial data never fails the listing
			continue
		}
		lat, lon := *g.CurrentLatitude, *g.CurrentLongitude
		ranked = append(ranked, RankedGuide{
			Guide:      g.Snapshot(),
			Latitude:   lat,
			Longitude:  lon,
			DistanceKm: geo.DistanceKm(origin.Lat, origin.Lon, lat, lon),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
