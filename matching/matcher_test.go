package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geohash-service/index"
	"geohash-service/models"
)

func seeded(t *testing.T, points ...models.Point) index.Index {
	t.Helper()
	idx := index.NewRTree(2.4)
	for _, p := range points {
		_, err := idx.Add(context.Background(), p)
		require.NoError(t, err)
	}
	return idx
}

func TestRankOrdersByDistance(t *testing.T) {
	idx := seeded(t,
		models.Point{ID: "b", Latitude: 42.62, Longitude: -5.603},
		models.Point{ID: "a", Latitude: 42.606, Longitude: -5.603},
		models.Point{ID: "c", Latitude: 42.57, Longitude: -5.64},
		models.Point{ID: "far", Latitude: 43.5, Longitude: -5.603},
	)

	matches, err := Rank(context.Background(), idx, 42.605, -5.603)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "a", matches[0].Point.ID)
	assert.Equal(t, "b", matches[1].Point.ID)
	assert.Equal(t, "c", matches[2].Point.ID)
	assert.InDelta(t, 0.111, matches[0].DistanceKm, 0.001)
	assert.Less(t, matches[0].DistanceKm, matches[1].DistanceKm)
}

func TestRankBreaksTiesByID(t *testing.T) {
	idx := seeded(t,
		models.Point{ID: "z", Latitude: 42.605, Longitude: -5.603},
		models.Point{ID: "y", Latitude: 42.605, Longitude: -5.603},
	)
	matches, err := Rank(context.Background(), idx, 42.605, -5.603)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "y", matches[0].Point.ID)
	assert.Equal(t, "z", matches[1].Point.ID)
}

func TestFindNearest(t *testing.T) {
	idx := seeded(t, models.Point{ID: "a", Latitude: 42.606, Longitude: -5.603})

	m, err := FindNearest(context.Background(), idx, 42.605, -5.603)
	require.NoError(t, err)
	assert.Equal(t, "a", m.Point.ID)

	_, err = FindNearest(context.Background(), idx, 10, 10)
	assert.ErrorIs(t, err, ErrNoneNearby)
}
