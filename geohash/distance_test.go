package geohash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, 111.195, DistanceKm(0, 0, 0, 1), 0.01)
	assert.InDelta(t, 0, DistanceKm(42.6, -5.6, 42.6, -5.6), 1e-9)
	// Paris to London
	assert.InDelta(t, 343.5, DistanceKm(48.8566, 2.3522, 51.5074, -0.1278), 1.0)
}

func TestHashDistanceKm(t *testing.T) {
	d, err := HashDistanceKm("ezs42", "EZS42")
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)

	// adjacent cells are one cell apart
	d, err = HashDistanceKm("ezs42", "ezs43")
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 10.0)

	_, err = HashDistanceKm("ezs42", "ezs4a")
	assert.ErrorIs(t, err, ErrInvalidHashCharacter)
}
