package index

import (
	"context"
	"fmt"
	"sync"

	"github.com/dhconnelly/rtreego"

	"geohash-service/geohash"
	"geohash-service/models"
)

// pointTolerance is the half-size of the box stored for a point.
const pointTolerance = 1e-9

// spatialPoint wraps a point to satisfy the rtreego.Spatial interface
type spatialPoint struct {
	models.Point
}

func (p *spatialPoint) Bounds() rtreego.Rect {
	return rtreego.Point{p.Latitude, p.Longitude}.ToRect(pointTolerance)
}

// RTree is an in-memory index. Nearby queries the tree with the boxes of
// the same 3x3 cell block the Redis index reads and keeps the points
// whose geohash is one of those cells.
type RTree struct {
	mu          sync.RWMutex
	tree        *rtreego.Rtree
	points      map[string]*spatialPoint
	precisionKm float64
}

func NewRTree(precisionKm float64) *RTree {
	return &RTree{
		tree:        rtreego.NewTree(2, 25, 50),
		points:      make(map[string]*spatialPoint),
		precisionKm: precisionKm,
	}
}

func (t *RTree) Add(_ context.Context, p models.Point) (models.Point, error) {
	p, err := locate(p, t.precisionKm)
	if err != nil {
		return p, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if old, ok := t.points[p.ID]; ok {
		t.tree.Delete(old)
	}
	sp := &spatialPoint{Point: p}
	t.tree.Insert(sp)
	t.points[p.ID] = sp
	return p, nil
}

func (t *RTree) Remove(_ context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	sp, ok := t.points[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPointNotFound, id)
	}
	t.tree.Delete(sp)
	delete(t.points, id)
	return nil
}

func (t *RTree) Nearby(_ context.Context, lat, lon float64) ([]models.Point, error) {
	cells, err := searchCells(lat, lon, t.precisionKm)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	inBlock := make(map[string]bool, len(cells))
	for _, hash := range cells {
		inBlock[hash] = true
	}

	// The boxes only narrow the candidates: they also touch points on the
	// outer edge of the block, which encode into the cell beyond it.
	var points []models.Point
	seen := make(map[string]bool)
	for _, hash := range cells {
		la, lo, err := geohash.DecodeInterval(hash)
		if err != nil {
			return nil, err
		}
		rect, err := rtreego.NewRect(rtreego.Point{la.Min, lo.Min}, []float64{la.Max - la.Min, lo.Max - lo.Min})
		if err != nil {
			return nil, err
		}
		for _, s := range t.tree.SearchIntersect(rect) {
			sp := s.(*spatialPoint)
			if seen[sp.ID] || !inBlock[sp.Geohash] {
				continue
			}
			seen[sp.ID] = true
			points = append(points, sp.Point)
		}
	}
	return points, nil
}
