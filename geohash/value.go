package geohash

import "strings"

// coord is an optional float.
type coord struct {
	v   float64
	set bool
}

// Value is a geohash cell known either by its coordinates or by its hash.
//
// A Value is unresolved while it only carries coordinates: Hash encodes them
// and caches the result, which makes it resolved. Changing the latitude, the
// longitude or the precision drops the cached hash and leaves the other
// fields untouched, so a Value can hold a latitude without a longitude.
// SetHash resolves a Value directly and fills the coordinates by decoding.
type Value struct {
	lat       coord
	lon       coord
	precision coord

	// hash is empty while unresolved.
	hash string
}

// NewFromCoordinates returns an unresolved Value for lat/lon at precisionKm.
func NewFromCoordinates(lat, lon, precisionKm float64) (*Value, error) {
	v := &Value{}
	if err := v.SetPrecision(precisionKm); err != nil {
		return nil, err
	}
	v.SetLatitude(lat)
	v.SetLongitude(lon)
	return v, nil
}

// NewFromHash returns a resolved Value for hash.
func NewFromHash(hash string) (*Value, error) {
	v := &Value{}
	if err := v.SetHash(hash); err != nil {
		return nil, err
	}
	return v, nil
}

// Resolved reports whether the hash is currently cached.
func (v *Value) Resolved() bool {
	return v.hash != ""
}

// Latitude returns the latitude and whether it is set.
func (v *Value) Latitude() (float64, bool) {
	return v.lat.v, v.lat.set
}

// Longitude returns the longitude and whether it is set.
func (v *Value) Longitude() (float64, bool) {
	return v.lon.v, v.lon.set
}

// PrecisionKm returns the precision, or DefaultPrecisionKm when none was set.
func (v *Value) PrecisionKm() float64 {
	if !v.precision.set {
		return DefaultPrecisionKm
	}
	return v.precision.v
}

// SetLatitude sets the latitude and drops any cached hash.
func (v *Value) SetLatitude(lat float64) {
	v.hash = ""
	v.lat = coord{v: lat, set: true}
}

// SetLongitude sets the longitude and drops any cached hash.
func (v *Value) SetLongitude(lon float64) {
	v.hash = ""
	v.lon = coord{v: lon, set: true}
}

// SetPrecision sets the precision in km. The value is left untouched on error.
func (v *Value) SetPrecision(precisionKm float64) error {
	if err := validatePrecision(precisionKm); err != nil {
		return err
	}
	v.hash = ""
	v.precision = coord{v: precisionKm, set: true}
	return nil
}

// SetHash replaces the value with the decoded form of hash: the rounded
// center and the table precision of its length. The value is left untouched on error.
func (v *Value) SetHash(hash string) error {
	lat, lon, precision, err := DecodeCenter(hash)
	if err != nil {
		return err
	}
	v.lat = coord{v: lat, set: true}
	v.lon = coord{v: lon, set: true}
	v.precision = coord{v: precision, set: true}
	v.hash = strings.ToLower(hash)
	return nil
}

// Hash resolves the value, encoding its coordinates if no hash is cached.
func (v *Value) Hash() (string, error) {
	if v.hash != "" {
		return v.hash, nil
	}
	if !v.lat.set || !v.lon.set {
		return "", ErrMissingCoordinate
	}
	hash, err := Encode(v.lat.v, v.lon.v, v.PrecisionKm())
	if err != nil {
		return "", err
	}
	v.hash = hash
	return hash, nil
}

// String returns the hash, or an empty string when the value cannot be resolved.
func (v *Value) String() string {
	hash, err := v.Hash()
	if err != nil {
		return ""
	}
	return hash
}

// Interval resolves the value and returns the extent of its cell.
func (v *Value) Interval() (lat, lon Interval, err error) {
	hash, err := v.Hash()
	if err != nil {
		return Interval{}, Interval{}, err
	}
	return DecodeInterval(hash)
}

// Neighbors returns the 8 cells surrounding v. See Neighbors.
func (v *Value) Neighbors() ([8]*Value, error) {
	return Neighbors(v)
}
