package geohash

import (
	"testing"

	mmgeohash "github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neighborHashes(t *testing.T, v *Value) []string {
	t.Helper()
	cells, err := Neighbors(v)
	require.NoError(t, err)
	hashes := make([]string, 0, len(cells))
	for _, c := range cells {
		h, err := c.Hash()
		require.NoError(t, err)
		hashes = append(hashes, h)
	}
	return hashes
}

func TestNeighborsOrderAndPrecision(t *testing.T) {
	v, err := NewFromHash("ezs42")
	require.NoError(t, err)

	cells, err := v.Neighbors()
	require.NoError(t, err)
	require.Len(t, cells, 8)

	// mmcloughlin orders neighbours N, NE, E, SE, S, SW, W, NW
	mm := mmgeohash.Neighbors("ezs42")
	want := []string{mm[5], mm[4], mm[3], mm[6], mm[2], mm[7], mm[0], mm[1]}

	seen := map[string]bool{"ezs42": true}
	for i, c := range cells {
		assert.False(t, c.Resolved())
		assert.Equal(t, v.PrecisionKm(), c.PrecisionKm())

		h, err := c.Hash()
		require.NoError(t, err)
		assert.Equal(t, want[i], h, "neighbour %d", i)
		assert.False(t, seen[h], "duplicate neighbour %s", h)
		seen[h] = true
	}
}

func TestNeighborsMatchReference(t *testing.T) {
	for _, p := range places {
		for l := 2; l <= MaxLength; l++ {
			v, err := NewFromCoordinates(p.lat, p.lon, precisionTable[l])
			require.NoError(t, err)
			hash, err := v.Hash()
			require.NoError(t, err)

			assert.ElementsMatch(t, mmgeohash.Neighbors(hash), neighborHashes(t, v), "%s at length %d", p.name, l)
		}
	}
}

func TestNeighborsFromCoordinatesAndHashAgree(t *testing.T) {
	byCoord, err := NewFromCoordinates(57.64911, 10.40744, 2.4)
	require.NoError(t, err)
	byHash, err := NewFromHash("u4pru")
	require.NoError(t, err)

	assert.Equal(t, neighborHashes(t, byHash), neighborHashes(t, byCoord))
}

func TestNeighborsWrapAround(t *testing.T) {
	// "z" is the north-east corner cell: lat [45, 90], lon [135, 180]
	v, err := NewFromHash("z")
	require.NoError(t, err)

	cells, err := Neighbors(v)
	require.NoError(t, err)
	for _, c := range cells {
		lat, _ := c.Latitude()
		lon, _ := c.Longitude()
		assert.True(t, lat >= -90 && lat <= 90, "lat %v", lat)
		assert.True(t, lon >= -180 && lon <= 180, "lon %v", lon)
	}

	hashes := neighborHashes(t, v)
	assert.Len(t, hashes, 8)
	// north of the pole wraps to the southern band, east of 180 to -180
	assert.Equal(t, "p", hashes[6])
	assert.Equal(t, "0", hashes[7])
	for _, h := range hashes {
		assert.Len(t, h, 1)
	}
}

func TestNeighborsMissingCoordinate(t *testing.T) {
	v := &Value{}
	v.SetLongitude(10)
	_, err := Neighbors(v)
	assert.ErrorIs(t, err, ErrMissingCoordinate)
}
