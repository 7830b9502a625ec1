// Package builder produces deterministic synthetic campus graphs for tests,
// benchmarks and examples.
//
// Every constructor lays out nodes on real latitude/longitude coordinates and,
// unless a constructor pins weights explicitly, derives each edge weight from
// the great-circle distance between its endpoints multiplied by a stretch
// factor ≥ 1. That keeps the haversine heuristic used by astar admissible on
// every generated graph, which is what makes the fixtures usable as oracles.
//
// Constructors:
//
//   - Square():              the 4-node one-way square used in end-to-end checks.
//   - Path(n):               a two-way chain running north.
//   - Grid(rows, cols):      a two-way orthogonal street grid.
//   - RandomSparse(n, p):    one-way arcs between random sites with probability p.
//
// Options:
//
//   - WithSeed / WithRand:   RNG for stochastic constructors and stretch draws.
//   - WithOrigin:            south-west corner of the layout.
//   - WithSpacing:           metres between neighbouring sites.
//   - WithStretch(min, max): uniform stretch range (requires an RNG when min < max).
//
// The returned graph is sealed.
//
// Example:
//
//	g, err := builder.BuildGraph(builder.Grid(4, 5), builder.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, _ := astar.ShortestPath(g, 0, g.NodeCount()-1)
package builder
