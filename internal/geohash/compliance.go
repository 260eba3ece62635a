package geohash

import "cloud.google.com/go/civil"

// Zone classifies a position under the 30W rule. Positions east of 30°W
// use the previous day's Dow Jones value because the hash date rolls over
// at UTC midnight, before the Western markets open.
type Zone int

const (
	// ZoneAuto derives the zone from longitude.
	ZoneAuto Zone = iota
	// ZoneEast marks positions east of 30°W (previous day's value).
	ZoneEast
	// ZoneWest marks positions at or west of 30°W (same day's value).
	ZoneWest
)

// String returns the zone name for logging.
func (z Zone) String() string {
	switch z {
	case ZoneEast:
		return "east"
	case ZoneWest:
		return "west"
	default:
		return "auto"
	}
}

// ResolveZone returns the 30W zone for a longitude. An explicit east/west
// override wins unconditionally; ZoneAuto applies the longitude rule.
func ResolveZone(lon float64, override Zone) Zone {
	if override != ZoneAuto {
		return override
	}
	if lon > -30 {
		return ZoneEast
	}
	return ZoneWest
}

// FetchDate returns the calendar day whose index value feeds the hash for
// date under zone z. Only the fetch is shifted; the digest always embeds
// the unshifted date.
func FetchDate(date civil.Date, z Zone) civil.Date {
	if z == ZoneEast {
		return date.AddDays(-1)
	}
	return date
}
