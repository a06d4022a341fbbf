package geohash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromCoordinates(t *testing.T) {
	v, err := NewFromCoordinates(57.64911, 10.40744, 2.4)
	require.NoError(t, err)
	assert.False(t, v.Resolved())

	hash, err := v.Hash()
	require.NoError(t, err)
	assert.Equal(t, "u4pru", hash)
	assert.True(t, v.Resolved())
	assert.Equal(t, "u4pru", v.String())

	lat, ok := v.Latitude()
	assert.True(t, ok)
	assert.Equal(t, 57.64911, lat)
	assert.Equal(t, 2.4, v.PrecisionKm())
}

func TestNewFromCoordinatesInvalidPrecision(t *testing.T) {
	_, err := NewFromCoordinates(1, 2, -3)
	assert.ErrorIs(t, err, ErrInvalidPrecision)
}

func TestZeroIsAValidCoordinate(t *testing.T) {
	v, err := NewFromCoordinates(0, 0, 2.4)
	require.NoError(t, err)
	hash, err := v.Hash()
	require.NoError(t, err)
	assert.Len(t, hash, 5)
}

func TestMissingCoordinate(t *testing.T) {
	v := &Value{}
	_, err := v.Hash()
	assert.ErrorIs(t, err, ErrMissingCoordinate)

	v.SetLatitude(12)
	_, err = v.Hash()
	assert.ErrorIs(t, err, ErrMissingCoordinate)
	assert.Equal(t, "", v.String())

	_, lonSet := v.Longitude()
	assert.False(t, lonSet)

	v.SetLongitude(34)
	hash, err := v.Hash()
	require.NoError(t, err)
	assert.Len(t, hash, DefaultLength)
	assert.Equal(t, DefaultPrecisionKm, v.PrecisionKm())
}

func TestSettersInvalidateHash(t *testing.T) {
	v, err := NewFromCoordinates(57.64911, 10.40744, 2.4)
	require.NoError(t, err)
	_, err = v.Hash()
	require.NoError(t, err)

	v.SetLatitude(-33.856784)
	assert.False(t, v.Resolved())
	lon, ok := v.Longitude()
	assert.True(t, ok)
	assert.Equal(t, 10.40744, lon)
	assert.Equal(t, 2.4, v.PrecisionKm())

	hash, err := v.Hash()
	require.NoError(t, err)
	assert.Equal(t, EncodeLength(-33.856784, 10.40744, 5), hash)

	require.NoError(t, v.SetPrecision(0.61))
	assert.False(t, v.Resolved())
	hash, err = v.Hash()
	require.NoError(t, err)
	assert.Len(t, hash, 6)

	v.SetLongitude(151.215297)
	assert.False(t, v.Resolved())
	hash, err = v.Hash()
	require.NoError(t, err)
	assert.Equal(t, EncodeLength(-33.856784, 151.215297, 6), hash)
}

func TestSetPrecisionRejectsInvalid(t *testing.T) {
	v, err := NewFromHash("ezs42")
	require.NoError(t, err)

	assert.ErrorIs(t, v.SetPrecision(0), ErrInvalidPrecision)
	assert.True(t, v.Resolved())
	assert.Equal(t, 2.4, v.PrecisionKm())
}

func TestNewFromHash(t *testing.T) {
	v, err := NewFromHash("EZS42")
	require.NoError(t, err)
	assert.True(t, v.Resolved())

	hash, err := v.Hash()
	require.NoError(t, err)
	assert.Equal(t, "ezs42", hash)

	lat, _ := v.Latitude()
	lon, _ := v.Longitude()
	assert.Equal(t, 42.6, lat)
	assert.Equal(t, -5.6, lon)
	assert.Equal(t, 2.4, v.PrecisionKm())
}

func TestDecodedPrecisionIsATableValue(t *testing.T) {
	for l := 1; l <= 15; l++ {
		v, err := NewFromHash(strings.Repeat("s", l))
		require.NoError(t, err)
		assert.Contains(t, precisionTable[1:], v.PrecisionKm(), "length %d", l)
	}
}

func TestSetHashInvalidLeavesValue(t *testing.T) {
	v, err := NewFromHash("u4pru")
	require.NoError(t, err)

	assert.ErrorIs(t, v.SetHash("u4pra"), ErrInvalidHashCharacter)
	hash, err := v.Hash()
	require.NoError(t, err)
	assert.Equal(t, "u4pru", hash)
}

func TestSetHashThenCoordinate(t *testing.T) {
	v, err := NewFromHash("ezs42")
	require.NoError(t, err)

	v.SetLongitude(-5.5)
	assert.False(t, v.Resolved())
	hash, err := v.Hash()
	require.NoError(t, err)
	assert.Equal(t, EncodeLength(42.6, -5.5, 5), hash)
}

func TestValueInterval(t *testing.T) {
	v, err := NewFromCoordinates(42.605, -5.603, 2.4)
	require.NoError(t, err)

	la, lo, err := v.Interval()
	require.NoError(t, err)
	wantLat, wantLon, err := DecodeInterval("ezs42")
	require.NoError(t, err)
	assert.Equal(t, wantLat, la)
	assert.Equal(t, wantLon, lo)

	_, _, err = (&Value{}).Interval()
	assert.ErrorIs(t, err, ErrMissingCoordinate)
}
