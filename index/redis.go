package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"geohash-service/models"
)

const pointsKey = "points:by_id"

func cellKey(hash string) string {
	return fmt.Sprintf("points:%s", hash)
}

// Redis keeps one set per geohash cell holding the JSON of its points,
// and a hash from point ID to the same JSON so a point can be moved.
type Redis struct {
	rdb         *redis.Client
	precisionKm float64
}

func NewRedis(rdb *redis.Client, precisionKm float64) *Redis {
	return &Redis{rdb: rdb, precisionKm: precisionKm}
}

func (r *Redis) Add(ctx context.Context, p models.Point) (models.Point, error) {
	p, err := locate(p, r.precisionKm)
	if err != nil {
		return p, err
	}
	if err := r.Remove(ctx, p.ID); err != nil && !errors.Is(err, ErrPointNotFound) {
		return p, err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return p, err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, cellKey(p.Geohash), data)
		pipe.HSet(ctx, pointsKey, p.ID, data)
		return nil
	})
	if err != nil {
		return p, fmt.Errorf("failed to store point %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *Redis) Remove(ctx context.Context, id string) error {
	data, err := r.rdb.HGet(ctx, pointsKey, id).Result()
	if err == redis.Nil {
		return fmt.Errorf("%w: %s", ErrPointNotFound, id)
	} else if err != nil {
		return err
	}

	var old models.Point
	if err := json.Unmarshal([]byte(data), &old); err != nil {
		return fmt.Errorf("corrupt point %s: %w", id, err)
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SRem(ctx, cellKey(old.Geohash), data)
		pipe.HDel(ctx, pointsKey, id)
		return nil
	})
	return err
}

func (r *Redis) Nearby(ctx context.Context, lat, lon float64) ([]models.Point, error) {
	cells, err := searchCells(lat, lon, r.precisionKm)
	if err != nil {
		return nil, err
	}

	var points []models.Point
	for _, hash := range cells {
		members, err := r.rdb.SMembers(ctx, cellKey(hash)).Result()
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			var p models.Point
			if err := json.Unmarshal([]byte(m), &p); err != nil {
				return nil, fmt.Errorf("corrupt member of %s: %w", cellKey(hash), err)
			}
			points = append(points, p)
		}
	}
	return points, nil
}
