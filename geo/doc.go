// Package geo holds the spherical geometry used by the router: great-circle
// distance, initial bearing, signed turn angle and compass naming.
//
// All angles are in degrees and all distances in meters on a sphere of radius
// EarthRadius (6,371,000 m).
//
//   - Haversine(a, b)       – great-circle distance; the A* heuristic.
//   - Bearing(a, b)         – initial bearing in [0, 360), 0 = north, 90 = east.
//   - TurnAngle(b1, b2)     – b2 − b1 normalized to (−180, 180], positive = right.
//   - CompassDirection(b)   – 8-point name, sector boundaries at 22.5° + k·45°.
//
// Boundary case: Bearing(p, p) is degenerate. atan2(0, 0) yields 0, so the
// function reports "north" for coincident points; callers that care should
// check Haversine(p, q) > 0 first.
package geo
