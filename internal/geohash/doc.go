// Package geohash implements the xkcd #426 geohashing algorithm.
//
// A geohash is a deterministic pseudo-random coordinate derived from a
// calendar date and a Dow Jones opening value. The date and value are
// hashed with md5, the two halves of the digest become base-16 fractions,
// and those fractions replace the fractional part of the requested
// graticule (the 1°x1° cell containing the caller's position).
//
// The package also implements the globalhash variant (the graticule (0,0)
// hash rescaled to span the whole globe), the centicule adjustment (the
// tenths digit of the input position spliced into the computed hash), and
// the 30W compliance rule that selects which day's index value feeds the
// hash.
package geohash
