// Package geohash converts coordinates to base-32 geohash strings and back,
// and enumerates the cells adjacent to a hash.
package geohash

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MaxLength is the longest hash the precision table covers.
	MaxLength = 12

	// DefaultLength is used when no precision is supplied.
	DefaultLength = 10

	alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"
)

// precisionTable maps a hash length to its approximate cell error in km.
// Index 0 is unused.
var precisionTable = [MaxLength + 1]float64{
	0,
	2500, 630, 78, 20, 2.4, 0.61,
	0.076, 0.019, 0.00478, 0.00060, 0.000075, 0.000018,
}

// DefaultPrecisionKm is the precision of a DefaultLength hash.
var DefaultPrecisionKm = precisionTable[DefaultLength]

var decodeTable = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}()

// Interval is the decoded extent of one axis.
type Interval struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	HalfWidth float64 `json:"half_width"`
}

// Center returns the midpoint of the interval.
func (i Interval) Center() float64 {
	return (i.Min + i.Max) / 2
}

// axis holds the bounds of one coordinate during a bisection walk.
type axis struct {
	min, max, err float64
}

var (
	latAxis = axis{min: -90, max: 90, err: 90}
	lonAxis = axis{min: -180, max: 180, err: 180}
)

func (a axis) bisect(upper bool) axis {
	mid := (a.min + a.max) / 2
	if upper {
		a.min = mid
	} else {
		a.max = mid
	}
	a.err /= 2
	return a
}

func (a axis) interval() Interval {
	return Interval{Min: a.min, Max: a.max, HalfWidth: a.err}
}

// steersLongitude reports whether bit b of character i belongs to longitude.
// Even (i + b) goes to longitude, so the very first bit is a longitude bit.
func steersLongitude(i, b int) bool {
	return (i+b)&1 == 0
}

// encodeBits produces the 5-bit symbol for character i and the narrowed axes.
func encodeBits(i int, lat, lon float64, la, lo axis) (int, axis, axis) {
	sym := 0
	for b := 4; b >= 0; b-- {
		if steersLongitude(i, b) {
			upper := lon > (lo.min+lo.max)/2
			if upper {
				sym |= 1 << uint(b)
			}
			lo = lo.bisect(upper)
		} else {
			upper := lat > (la.min+la.max)/2
			if upper {
				sym |= 1 << uint(b)
			}
			la = la.bisect(upper)
		}
	}
	return sym, la, lo
}

// decodeBits narrows the axes by the 5-bit symbol found at character i.
func decodeBits(i, sym int, la, lo axis) (axis, axis) {
	for b := 4; b >= 0; b-- {
		upper := sym&(1<<uint(b)) != 0
		if steersLongitude(i, b) {
			lo = lo.bisect(upper)
		} else {
			la = la.bisect(upper)
		}
	}
	return la, lo
}

// LengthForPrecision converts a precision in km to a hash length in [1, MaxLength].
// The length is one less than the first table index whose error drops below precisionKm.
func LengthForPrecision(precisionKm float64) (int, error) {
	if err := validatePrecision(precisionKm); err != nil {
		return 0, err
	}
	i := 1
	for i <= MaxLength && precisionTable[i] >= precisionKm {
		i++
	}
	if i-1 < 1 {
		return 1, nil
	}
	return i - 1, nil
}

// PrecisionForLength returns the table precision for a hash length.
// Lengths beyond MaxLength clamp to the finest entry.
func PrecisionForLength(length int) float64 {
	switch {
	case length < 1:
		return precisionTable[1]
	case length > MaxLength:
		return precisionTable[MaxLength]
	}
	return precisionTable[length]
}

func validatePrecision(precisionKm float64) error {
	if math.IsNaN(precisionKm) || math.IsInf(precisionKm, 0) || precisionKm <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPrecision, precisionKm)
	}
	return nil
}

// Encode returns the geohash of lat/lon with a length derived from precisionKm.
// Use EncodeDefault when no precision is wanted.
func Encode(lat, lon, precisionKm float64) (string, error) {
	length, err := LengthForPrecision(precisionKm)
	if err != nil {
		return "", err
	}
	return EncodeLength(lat, lon, length), nil
}

// EncodeDefault returns the DefaultLength geohash of lat/lon.
func EncodeDefault(lat, lon float64) string {
	return EncodeLength(lat, lon, DefaultLength)
}

// EncodeLength returns a geohash of exactly length characters, length clamped to [1, MaxLength].
func EncodeLength(lat, lon float64, length int) string {
	if length < 1 {
		length = 1
	} else if length > MaxLength {
		length = MaxLength
	}

	var sb strings.Builder
	sb.Grow(length)
	la, lo := latAxis, lonAxis
	for i := 0; i < length; i++ {
		var sym int
		sym, la, lo = encodeBits(i, lat, lon, la, lo)
		sb.WriteByte(alphabet[sym])
	}
	return sb.String()
}

// DecodeInterval returns the latitude and longitude extents of hash.
// Upper case characters are accepted.
func DecodeInterval(hash string) (lat, lon Interval, err error) {
	if hash == "" {
		return Interval{}, Interval{}, fmt.Errorf("%w: empty hash", ErrInvalidHashCharacter)
	}
	la, lo := latAxis, lonAxis
	for i := 0; i < len(hash); i++ {
		c := hash[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sym := decodeTable[c]
		if sym < 0 {
			return Interval{}, Interval{}, fmt.Errorf("%w %q at position %d", ErrInvalidHashCharacter, hash[i], i)
		}
		la, lo = decodeBits(i, int(sym), la, lo)
	}
	return la.interval(), lo.interval(), nil
}

// DecodeCenter returns the rounded center of hash and the precision its length implies.
func DecodeCenter(hash string) (lat, lon, precisionKm float64, err error) {
	la, lo, err := DecodeInterval(hash)
	if err != nil {
		return 0, 0, 0, err
	}
	lat = roundTo(la.Center(), roundingDigits(la.HalfWidth))
	lon = roundTo(lo.Center(), roundingDigits(lo.HalfWidth))
	return lat, lon, PrecisionForLength(len(hash)), nil
}

// roundingDigits is the number of decimals a coordinate with the given
// half-width can honestly carry.
func roundingDigits(halfWidth float64) int {
	d := int(math.Round(-math.Log10(halfWidth)))
	if d < 1 {
		d = 1
	}
	return d - 1
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
