package matching

import (
	"context"
	"errors"
	"sort"

	"geohash-service/geohash"
	"geohash-service/index"
	"geohash-service/models"
)

var ErrNoneNearby = errors.New("no points nearby")

// Rank returns the points of the 3x3 cell block around lat/lon, closest first.
// Ties are broken by ID so results are stable.
func Rank(ctx context.Context, idx index.Index, lat, lon float64) ([]models.Match, error) {
	points, err := idx.Nearby(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	matches := make([]models.Match, 0, len(points))
	for _, p := range points {
		matches = append(matches, models.Match{
			Point:      p,
			DistanceKm: geohash.DistanceKm(lat, lon, p.Latitude, p.Longitude),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Point.ID < matches[j].Point.ID
	})
	return matches, nil
}

// FindNearest returns the closest point around lat/lon, or ErrNoneNearby.
func FindNearest(ctx context.Context, idx index.Index, lat, lon float64) (*models.Match, error) {
	matches, err := Rank(ctx, idx, lat, lon)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoneNearby
	}
	return &matches[0], nil
}
