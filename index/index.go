// Package index keeps points bucketed by geohash cell and answers
// proximity queries over the 3x3 block of cells around a location.
package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"geohash-service/geohash"
	"geohash-service/models"
)

type Technique string

const (
	GeohashTechnique Technique = "geohash"
	RTreeTechnique   Technique = "rtree"
)

var (
	ErrUnknownTechnique = errors.New("unsupported geo-indexing technique")
	ErrPointNotFound    = errors.New("point not found")
	ErrMissingID        = errors.New("point id is required")
)

// Index stores points and finds the ones near a location.
type Index interface {
	// Add stores p, replacing any point with the same ID, and returns it
	// with its geohash filled in.
	Add(ctx context.Context, p models.Point) (models.Point, error)
	Remove(ctx context.Context, id string) error
	// Nearby returns the points lying in the cell of lat/lon or one of its 8 neighbours.
	Nearby(ctx context.Context, lat, lon float64) ([]models.Point, error)
}

var (
	_ Index = (*Redis)(nil)
	_ Index = (*RTree)(nil)
)

// New builds the index for technique. rdb is only used by GeohashTechnique.
func New(technique Technique, rdb *redis.Client, precisionKm float64) (Index, error) {
	if _, err := geohash.LengthForPrecision(precisionKm); err != nil {
		return nil, err
	}
	switch technique {
	case GeohashTechnique:
		if rdb == nil {
			return nil, fmt.Errorf("%s index requires a Redis client", technique)
		}
		return NewRedis(rdb, precisionKm), nil
	case RTreeTechnique:
		return NewRTree(precisionKm), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTechnique, technique)
}

// locate validates p and fills in its geohash.
func locate(p models.Point, precisionKm float64) (models.Point, error) {
	if p.ID == "" {
		return p, ErrMissingID
	}
	hash, err := geohash.Encode(p.Latitude, p.Longitude, precisionKm)
	if err != nil {
		return p, err
	}
	p.Geohash = hash
	return p, nil
}

// searchCells returns the cell of lat/lon followed by its neighbours,
// without the duplicates the pole wrap can produce on coarse cells.
func searchCells(lat, lon, precisionKm float64) ([]string, error) {
	center, err := geohash.NewFromCoordinates(lat, lon, precisionKm)
	if err != nil {
		return nil, err
	}
	hash, err := center.Hash()
	if err != nil {
		return nil, err
	}
	neighbors, err := center.Neighbors()
	if err != nil {
		return nil, err
	}

	cells := []string{hash}
	seen := map[string]bool{hash: true}
	for _, n := range neighbors {
		h, err := n.Hash()
		if err != nil {
			return nil, err
		}
		if seen[h] {
			continue
		}
		seen[h] = true
		cells = append(cells, h)
	}
	return cells, nil
}
