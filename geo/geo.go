package geo

import (
	"math"

	"github.com/katalvlaran/buzznav/core"
)

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

const degToRad = math.Pi / 180.0

// Haversine returns the great-circle distance between a and b in meters.
// Complexity: O(1).
func Haversine(a, b core.Coord) float64 {
	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * degToRad

	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)
	h := sLat*sLat + math.Cos(lat1)*math.Cos(lat2)*sLon*sLon
	// Rounding can push h a hair above 1 for antipodal points.
	h = math.Min(1, h)

	return 2 * EarthRadius * math.Asin(math.Sqrt(h))
}

// Bearing returns the initial great-circle bearing from a to b in [0, 360).
// Bearing(p, p) is degenerate and returns 0.
func Bearing(a, b core.Coord) float64 {
	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad
	dLon := (b.Lon - a.Lon) * degToRad

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	deg := math.Atan2(y, x) / degToRad

	return math.Mod(deg+360, 360)
}

// TurnAngle returns the signed change of heading from b1 to b2, normalized
// to (−180, 180]. Positive values are right turns, negative are left turns.
func TurnAngle(b1, b2 float64) float64 {
	angle := math.Mod(b2-b1, 360)
	if angle > 180 {
		angle -= 360
	} else if angle <= -180 {
		angle += 360
	}

	return angle
}

// compassNames lists the 8 sectors clockwise from north.
var compassNames = [8]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// CompassDirection names the 8-point compass sector containing bearing.
// Sector k spans [k·45 − 22.5, k·45 + 22.5); any real input is accepted.
func CompassDirection(bearing float64) string {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	idx := int(math.Floor((b+22.5)/45)) % len(compassNames)

	return compassNames[idx]
}
