package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse scatters n sites uniformly over a square of side
// ceil(sqrt(n))·spacing metres and adds each ordered one-way arc (i, j), i ≠ j,
// independently with probability p. The result is usually asymmetric and may
// be disconnected, which is the point.
//
// Trial order is i ascending then j ascending, so outcomes are stable per seed.
// Requires an RNG (WithSeed/WithRand).
func RandomSparse(n int, p float64) Constructor {
	return func(pl *Plan, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := math.Ceil(math.Sqrt(float64(n))) * cfg.spacing
		for i := 0; i < n; i++ {
			pl.AddSite(offset(cfg.origin, cfg.rng.Float64()*side, cfg.rng.Float64()*side))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					pl.Connect(i, j)
				}
			}
		}

		return nil
	}
}
