package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a rows×cols orthogonal street grid. Node r*cols+c sits
// c·spacing metres east and r·spacing metres north of the origin and is
// linked in both directions to its right and upper neighbours.
//
// Emission order is row-major, right neighbour before upper neighbour, so a
// fixed seed yields identical weights.
func Grid(rows, cols int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p.AddSite(offset(cfg.origin, float64(c)*cfg.spacing, float64(r)*cfg.spacing))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					p.ConnectBoth(u, u+1)
				}
				if r+1 < rows {
					p.ConnectBoth(u, u+cols)
				}
			}
		}

		return nil
	}
}
