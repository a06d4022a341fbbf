package geohash

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean radius used for great-circle distances.
const EarthRadiusKm = 6371.01

// DistanceKm returns the great-circle distance between two coordinates.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * EarthRadiusKm
}

// HashDistanceKm returns the distance between the centers of two hashes.
func HashDistanceKm(from, to string) (float64, error) {
	flat, flon, err := DecodeInterval(from)
	if err != nil {
		return 0, err
	}
	tlat, tlon, err := DecodeInterval(to)
	if err != nil {
		return 0, err
	}
	return DistanceKm(flat.Center(), flon.Center(), tlat.Center(), tlon.Center()), nil
}
