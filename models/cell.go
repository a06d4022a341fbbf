package models

// Cell describes one geohash cell.
type Cell struct {
	Geohash     string  `json:"geohash"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PrecisionKm float64 `json:"precision_km"`
	Bounds      *Bounds `json:"bounds,omitempty"`
}

type Bounds struct {
	MinLatitude  float64 `json:"min_latitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLongitude float64 `json:"max_longitude"`
}
