package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a two-way chain of n sites running north from the origin,
// cfg.spacing metres apart. Node i is linked to i+1 in both directions.
func Path(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			p.AddSite(offset(cfg.origin, 0, float64(i)*cfg.spacing))
		}
		for i := 0; i+1 < n; i++ {
			p.ConnectBoth(i, i+1)
		}

		return nil
	}
}
