package multistop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/dijkstra"
	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/katalvlaran/buzznav/internal/parallel"
	"github.com/katalvlaran/buzznav/tsp"
)

// Pairwise runs one Dijkstra sweep from every node in nodes, at most workers
// at a time, and tabulates stop-to-stop distances and paths.
//
// Each sweep stops once every stop is settled. Row i is written only by the
// worker for stop i; the tables are read only after the join.
func Pairwise(ctx context.Context, g *core.Graph, nodes []int, workers int) (*Matrix, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	for i, id := range nodes {
		if !g.Valid(id) {
			return nil, fmt.Errorf("multistop: stop %d (node %d): %w", i, id, core.ErrInvalidNode)
		}
	}

	n := len(nodes)
	m := &Matrix{
		Nodes: append([]int(nil), nodes...),
		Dist:  make([][]float64, n),
		Paths: make([][][]int, n),
	}
	log := ctxlog.FromContext(ctx)

	err := parallel.ForEach(ctx, n, parallel.Workers(workers), func(_ context.Context, i int) error {
		tree, err := dijkstra.Sweep(g, nodes[i], dijkstra.WithTargets(nodes...))
		if err != nil {
			return err
		}
		dist := make([]float64, n)
		paths := make([][]int, n)
		for j, dst := range nodes {
			if !tree.Reachable(dst) {
				dist[j] = tsp.Unreachable
				continue
			}
			dist[j] = tree.Distance(dst)
			paths[j] = tree.PathTo(dst)
		}
		m.Dist[i] = dist
		m.Paths[i] = paths

		log.Debug("sweep finished",
			slog.Int("stop", i),
			slog.Int("node", nodes[i]),
			slog.Int("settled", tree.Settled()),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}
