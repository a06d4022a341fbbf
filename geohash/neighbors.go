package geohash

// Neighbors returns the cells of the 3x3 grid around v, center excluded,
// as unresolved values carrying v's precision.
//
// Results are ordered south to north, and west to east within a row:
// SW, S, SE, W, E, NW, N, NE.
//
// Candidates past a pole or the antimeridian are shifted by a full range
// (180 degrees of latitude, 360 of longitude). This is a linear wrap, not the
// true cell across the pole.
func Neighbors(v *Value) ([8]*Value, error) {
	var out [8]*Value

	la, lo, err := v.Interval()
	if err != nil {
		return out, err
	}
	dlat := la.Max - la.Min
	dlon := lo.Max - lo.Min
	lat, lon := la.Center(), lo.Center()
	precision := v.PrecisionKm()

	n := 0
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i == 0 && j == 0 {
				continue
			}
			out[n] = &Value{
				lat:       coord{v: wrapLatitude(lat + dlat*float64(i)), set: true},
				lon:       coord{v: wrapLongitude(lon + dlon*float64(j)), set: true},
				precision: coord{v: precision, set: true},
			}
			n++
		}
	}
	return out, nil
}

func wrapLatitude(lat float64) float64 {
	if lat < -90 {
		return lat + 180
	} else if lat > 90 {
		return lat - 180
	}
	return lat
}

func wrapLongitude(lon float64) float64 {
	if lon < -180 {
		return lon + 360
	} else if lon > 180 {
		return lon - 360
	}
	return lon
}
