package geohash

import "errors"

var (
	// ErrMissingCoordinate is returned when a hash is requested from a value
	// that lacks a latitude or a longitude.
	ErrMissingCoordinate = errors.New("geohash: latitude and longitude are required")

	// ErrInvalidHashCharacter is returned when a hash contains a symbol outside the base-32 alphabet.
	ErrInvalidHashCharacter = errors.New("geohash: invalid hash character")

	// ErrInvalidPrecision is returned for non-positive or non-finite precisions.
	ErrInvalidPrecision = errors.New("geohash: precision must be a positive finite number of km")
)
