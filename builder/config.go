package builder

import (
	"math/rand"

	"github.com/katalvlaran/buzznav/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng        *rand.Rand // nil means no randomness
	origin     core.Coord // south-west corner of the layout
	spacing    float64    // metres between neighbouring sites
	stretchMin float64    // lower bound of the weight/geodesic ratio
	stretchMax float64    // upper bound of the weight/geodesic ratio
}

// Deterministic defaults.
const (
	defaultOriginLat = 33.7756  // Georgia Tech campus
	defaultOriginLon = -84.3963 // Georgia Tech campus
	defaultSpacing   = 50.0     // metres
	defaultStretch   = 1.1      // roads are never shorter than the straight line
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		origin:     core.Coord{Lat: defaultOriginLat, Lon: defaultOriginLon},
		spacing:    defaultSpacing,
		stretchMin: defaultStretch,
		stretchMax: defaultStretch,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// stretch draws one weight/geodesic ratio. Fixed ranges never touch the RNG.
func (c builderConfig) stretch() float64 {
	if c.stretchMax == c.stretchMin || c.rng == nil {
		return c.stretchMin
	}

	return c.stretchMin + c.rng.Float64()*(c.stretchMax-c.stretchMin)
}
