package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"wanderer/internal/geo"
	"wanderer/internal/model"
)

// guideAtKm places a guide due north of the origin by the given distance.
func guideAtKm(name string, origin geo.Point, km float64) model.User {
	lat := origin.Lat + km/111.32
	return model.User{
		ID:               uuid.New(),
		Name:             name,
		Role:             model.RoleGuide,
		CurrentLatitude:  &lat,
		CurrentLongitude: &origin.Lon,
	}
}

func TestRankNearby(t *testing.T) {
	origin := geo.Point{Lat: 19.0760, Lon: 72.8777}

	guides := []model.User{
		guideAtKm("Amol", origin, 2),
		guideAtKm("Priya", origin, 8),
		{ID: uuid.New(), Name: "Vikram", Role: model.RoleGuide}, // no position yet
		guideAtKm("Sangeeta", origin, 1),
		guideAtKm("Deepak", origin, 4),
	}

	ranked := rankNearby(origin, guides, 3)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "Sangeeta", ranked[0].Guide.Name)
	assert.Equal(t, "Amol", ranked[1].Guide.Name)
	assert.Equal(t, "Deepak", ranked[2].Guide.Name)
	assert.InDelta(t, 1, ranked[0].DistanceKm, 0.05)
	assert.InDelta(t, 2, ranked[1].DistanceKm, 0.05)
	assert.InDelta(t, 4, ranked[2].DistanceKm, 0.05)
}

func TestRankNearby_SortedAscending(t *testing.T) {
	origin := geo.Point{Lat: 19.0760, Lon: 72.8777}
	guides := []model.User{
		guideAtKm("a", origin, 9),
		guideAtKm("b", origin, 3),
		guideAtKm("c", origin, 7),
		guideAtKm("d", origin, 1),
	}

	ranked := rankNearby(origin, guides, 0)

	assert.Len(t, ranked, 4)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
	}
}

func TestRankNearby_ExcludesGuidesWithoutPosition(t *testing.T) {
	origin := geo.Point{Lat: 19.0760, Lon: 72.8777}
	lat := origin.Lat
	guides := []model.User{
		{ID: uuid.New(), Name: "no position", Role: model.RoleGuide},
		{ID: uuid.New(), Name: "lat only", Role: model.RoleGuide, CurrentLatitude: &lat},
		guideAtKm("complete", origin, 2),
	}

	ranked := rankNearby(origin, guides, 10)

	assert.Len(t, ranked, 1)
	assert.Equal(t, "complete", ranked[0].Guide.Name)
}

func TestRankNearby_FewerGuidesThanLimit(t *testing.T) {
	origin := geo.Point{Lat: 19.0760, Lon: 72.8777}
	guides := []model.User{guideAtKm("only", origin, 2)}

	ranked := rankNearby(origin, guides, 5)
	assert.Len(t, ranked, 1)

	assert.Empty(t, rankNearby(origin, nil, 5))
}
