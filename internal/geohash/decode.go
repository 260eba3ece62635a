package geohash

import (
	"fmt"
	"strconv"
)

// Graticule identifies a 1°x1° cell by its truncated integer coordinates.
type Graticule struct {
	Lat int
	Lon int
}

// GraticuleOf returns the graticule containing a position. Truncation is
// toward zero, so (-122.9, 37.9) and (-122.1, 37.1) share a graticule.
func GraticuleOf(lat, lon float64) Graticule {
	return Graticule{Lat: int(lat), Lon: int(lon)}
}

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Decode maps a digest into a graticule. The first 16 hex characters
// become the latitude fraction, the last 16 the longitude fraction, and
// each fraction replaces the fractional part of the corresponding
// graticule component. The integer part of the result always equals the
// graticule.
func Decode(g Graticule, digest string) (Coordinate, error) {
	if len(digest) != 32 {
		return Coordinate{}, fmt.Errorf("digest must be 32 hex characters, got %d", len(digest))
	}

	latFrac, err := fraction(digest[:16])
	if err != nil {
		return Coordinate{}, err
	}
	lonFrac, err := fraction(digest[16:])
	if err != nil {
		return Coordinate{}, err
	}

	lat, err := splice(g.Lat, latFrac)
	if err != nil {
		return Coordinate{}, err
	}
	lon, err := splice(g.Lon, lonFrac)
	if err != nil {
		return Coordinate{}, err
	}

	return Coordinate{Lat: lat, Lon: lon}, nil
}

// fraction interprets 16 hex characters as the mantissa of a base-16
// fraction 0.hhhhhhhhhhhhhhhh. float64(v)/2^64 rounds identically to a
// correctly-rounded hex-float parse, so the result matches the reference
// algorithm bit for bit.
func fraction(half string) (float64, error) {
	v, err := strconv.ParseUint(half, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse digest half %q: %w", half, err)
	}
	return float64(v) / (1 << 64), nil
}

// splice concatenates a graticule component with the decimal rendering of
// a fraction and parses the result back. The fraction is rendered with
// shortest round-trip formatting; the visible digits of the coordinate
// depend on that choice, so it must stay a standard double-to-decimal
// conversion.
func splice(component int, frac float64) (float64, error) {
	text := strconv.FormatFloat(frac, 'f', -1, 64)
	// Drop the integer digit, keeping only ".ddd..." (empty for a zero
	// fraction).
	joined := strconv.Itoa(component) + text[1:]
	f, err := strconv.ParseFloat(joined, 64)
	if err != nil {
		return 0, fmt.Errorf("parse coordinate %q: %w", joined, err)
	}
	return f, nil
}
