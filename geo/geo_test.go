package geo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/geo"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	p := core.Coord{Lat: 33.7760, Lon: -84.3970}
	require.Equal(t, 0.0, geo.Haversine(p, p))

	// One degree of latitude along a meridian is R·π/180.
	a := core.Coord{Lat: 0, Lon: 0}
	b := core.Coord{Lat: 1, Lon: 0}
	require.InDelta(t, geo.EarthRadius*math.Pi/180, geo.Haversine(a, b), 1e-6)

	// Symmetric.
	q := core.Coord{Lat: 33.7771, Lon: -84.3952}
	require.InDelta(t, geo.Haversine(p, q), geo.Haversine(q, p), 1e-9)

	// Antipodes are half the circumference.
	require.InDelta(t, math.Pi*geo.EarthRadius, geo.Haversine(a, core.Coord{Lat: 0, Lon: 180}), 1e-3)
}

func TestBearing_Cardinals(t *testing.T) {
	o := core.Coord{Lat: 0, Lon: 0}
	cases := []struct {
		name string
		to   core.Coord
		want float64
	}{
		{"North", core.Coord{Lat: 1, Lon: 0}, 0},
		{"East", core.Coord{Lat: 0, Lon: 1}, 90},
		{"South", core.Coord{Lat: -1, Lon: 0}, 180},
		{"West", core.Coord{Lat: 0, Lon: -1}, 270},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, geo.Bearing(o, tc.to), 1e-9)
		})
	}
}

func TestBearing_Range(t *testing.T) {
	o := core.Coord{Lat: 33.7760, Lon: -84.3970}
	for i := 0; i < 72; i++ {
		rad := float64(i) * 5 * math.Pi / 180
		to := core.Coord{Lat: o.Lat + 0.001*math.Cos(rad), Lon: o.Lon + 0.001*math.Sin(rad)}
		b := geo.Bearing(o, to)
		require.GreaterOrEqual(t, b, 0.0)
		require.Less(t, b, 360.0)
	}
}

// TestBearing_Degenerate documents the coincident-point boundary case.
func TestBearing_Degenerate(t *testing.T) {
	p := core.Coord{Lat: 10, Lon: 10}
	require.Equal(t, 0.0, geo.Bearing(p, p))
}

func TestTurnAngle(t *testing.T) {
	cases := []struct {
		b1, b2, want float64
	}{
		{0, 0, 0},
		{123.4, 123.4, 0},
		{0, 90, 90},
		{90, 0, -90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{180, 0, 180},
		{270, 90, 180},
		{45, 224.9, 179.9},
		{45, 225.1, -179.9},
	}
	for _, tc := range cases {
		got := geo.TurnAngle(tc.b1, tc.b2)
		require.InDelta(t, tc.want, got, 1e-9, "TurnAngle(%v,%v)", tc.b1, tc.b2)
	}

	// Always within (−180, 180].
	for b1 := 0.0; b1 < 360; b1 += 7.5 {
		for b2 := 0.0; b2 < 360; b2 += 7.5 {
			a := geo.TurnAngle(b1, b2)
			require.Greater(t, a, -180.0)
			require.LessOrEqual(t, a, 180.0)
		}
	}
}

func TestCompassDirection(t *testing.T) {
	cases := map[float64]string{
		0:      "north",
		22.49:  "north",
		22.5:   "northeast",
		67.49:  "northeast",
		67.5:   "east",
		112.5:  "southeast",
		157.5:  "south",
		202.5:  "southwest",
		247.5:  "west",
		292.5:  "northwest",
		337.49: "northwest",
		337.5:  "north",
		359.99: "north",
		360:    "north",
		-45:    "northwest",
	}
	for bearing, want := range cases {
		require.Equal(t, want, geo.CompassDirection(bearing), "bearing %v", bearing)
	}
}
