package builder

import "github.com/katalvlaran/buzznav/core"

// Square corner coordinates: 0 SW, 1 NW, 2 NE, 3 SE (roughly 55 m sides).
var squareCorners = [4]core.Coord{
	{Lat: 33.7760, Lon: -84.3970},
	{Lat: 33.7765, Lon: -84.3970},
	{Lat: 33.7765, Lon: -84.3964},
	{Lat: 33.7760, Lon: -84.3964},
}

// SquareSide is the fixed weight of every Square arc.
const SquareSide = 100.0

// Square returns the canonical one-way square 0→1→2→3, each arc weighing
// SquareSide metres. Coordinates are fixed; WithOrigin does not move it.
func Square() Constructor {
	return func(p *Plan, _ builderConfig) error {
		for _, c := range squareCorners {
			p.AddSite(c)
		}
		p.ConnectWeighted(0, 1, SquareSide)
		p.ConnectWeighted(1, 2, SquareSide)
		p.ConnectWeighted(2, 3, SquareSide)

		return nil
	}
}
