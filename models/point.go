package models

// Point is an indexed location.
type Point struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash"`
}

// Match is a point found near a query location.
type Match struct {
	Point      Point   `json:"point"`
	DistanceKm float64 `json:"distance_km"`
}
