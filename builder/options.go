package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/buzznav/core"
)

// BuilderOption customizes a builderConfig before construction begins.
// Option constructors validate their arguments and panic on meaningless input;
// constructors themselves never panic.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin moves the south-west corner of the layout.
// Panics if the latitude is outside (-90, 90) or the longitude outside [-180, 180].
func WithOrigin(origin core.Coord) BuilderOption {
	if origin.Lat <= -90 || origin.Lat >= 90 || origin.Lon < -180 || origin.Lon > 180 {
		panic("builder: WithOrigin out of range")
	}
	return func(c *builderConfig) {
		c.origin = origin
	}
}

// WithSpacing sets the distance in metres between neighbouring sites.
// Panics unless spacing is positive and finite.
func WithSpacing(spacing float64) BuilderOption {
	if !(spacing > 0) || math.IsInf(spacing, 1) {
		panic("builder: WithSpacing must be > 0")
	}
	return func(c *builderConfig) {
		c.spacing = spacing
	}
}

// WithStretch sets the range of the weight/geodesic ratio drawn per edge.
// Panics unless 1 ≤ min ≤ max; a ratio below one would break heuristic
// admissibility. A non-degenerate range needs an RNG at build time.
func WithStretch(min, max float64) BuilderOption {
	if !(min >= 1) || max < min || math.IsInf(max, 1) {
		panic("builder: WithStretch requires 1 <= min <= max")
	}
	return func(c *builderConfig) {
		c.stretchMin = min
		c.stretchMax = max
	}
}
