package geohash

import (
	"math"
	"strconv"
)

// AdjustCenticule replaces the tenths digit of a computed hash with the
// tenths digit of the original input position, per axis. The result
// identifies the 0.1°x0.1° sub-cell (centicule) containing the caller.
func AdjustCenticule(computed, original Coordinate) Coordinate {
	return Coordinate{
		Lat: replaceTenths(computed.Lat, original.Lat),
		Lon: replaceTenths(computed.Lon, original.Lon),
	}
}

// replaceTenths overwrites the digit one position past the decimal point.
// The substitution is positional, never a substring search, so no other
// digit of the value can be touched even when the same digit pair recurs
// later in the rendering.
func replaceTenths(computed, original float64) float64 {
	tenths := byte(math.Mod(math.Trunc(math.Abs(original)*10), 10))

	text := []byte(strconv.FormatFloat(computed, 'f', -1, 64))
	point := -1
	for i, c := range text {
		if c == '.' {
			point = i
			break
		}
	}
	if point < 0 {
		text = append(text, '.', '0'+tenths)
	} else {
		text[point+1] = '0' + tenths
	}

	f, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		// Unreachable: the input was rendered by FormatFloat and only a
		// single digit changed.
		return computed
	}
	return f
}
