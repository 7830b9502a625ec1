package route

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/buzznav/astar"
	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/katalvlaran/buzznav/internal/parallel"
)

// ViaPoints routes start → via[0] → … → via[k-1] → goal on g.
//
// With no via points it returns exactly what astar.ShortestPath returns,
// including an unreachable result (+Inf, nil path) without error. With via
// points, segment i runs from stops[i] to stops[i+1] on its own goroutine;
// every node ID is validated before any goroutine starts.
//
// Errors:
//
//   - core.ErrNilGraph / core.ErrInvalidNode for bad input.
//   - *SegmentError (matching ErrPartialRouteUnreachable) naming the first
//     unreachable segment.
//   - parallel.ErrWorkerPanic or ctx.Err() from the fork-join.
func ViaPoints(ctx context.Context, g *core.Graph, start, goal int, via []int, opts ...astar.Option) (Result, error) {
	if len(via) == 0 {
		res, err := astar.ShortestPath(g, start, goal, opts...)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Distance: res.Distance,
			Path:     res.Path,
			Segments: []astar.Result{res},
		}, nil
	}

	if g == nil {
		return Result{}, core.ErrNilGraph
	}
	stops := make([]int, 0, len(via)+2)
	stops = append(stops, start)
	stops = append(stops, via...)
	stops = append(stops, goal)
	for i, id := range stops {
		if !g.Valid(id) {
			return Result{}, fmt.Errorf("route: stop %d (node %d): %w", i, id, core.ErrInvalidNode)
		}
	}

	log := ctxlog.FromContext(ctx)
	segments := make([]astar.Result, len(stops)-1)
	err := parallel.ForEach(ctx, len(segments), len(segments), func(_ context.Context, i int) error {
		res, err := astar.ShortestPath(g, stops[i], stops[i+1], opts...)
		if err != nil {
			return err
		}
		segments[i] = res
		log.Debug("segment solved",
			slog.Int("segment", i),
			slog.Int("from", stops[i]),
			slog.Int("to", stops[i+1]),
			slog.Float64("distance_m", res.Distance),
			slog.Int("expanded", res.Expanded),
		)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	// Join reached: validate before merging anything.
	for i, s := range segments {
		if !s.Reachable() {
			return Result{}, &SegmentError{Index: i, From: stops[i], To: stops[i+1]}
		}
	}

	paths := make([][]int, len(segments))
	total := 0.0
	for i, s := range segments {
		paths[i] = s.Path
		total += s.Distance
	}
	merged := Merge(paths...)

	return Result{
		Distance: total,
		Path:     merged,
		Via:      ViaIndices(merged, via),
		Segments: segments,
	}, nil
}

// Merge concatenates segment paths in order, dropping the first node of each
// segment after the first: a→b + b→c = a→b→c. Empty segments are skipped.
// The result is freshly allocated.
func Merge(segments ...[]int) []int {
	n := 0
	for _, s := range segments {
		n += len(s)
	}
	merged := make([]int, 0, n)
	for _, s := range segments {
		if len(s) == 0 {
			continue
		}
		if len(merged) > 0 {
			s = s[1:]
		}
		merged = append(merged, s...)
	}

	return merged
}

// ViaIndices returns, for each via node, the index of its first occurrence
// in path, or -1 if it does not occur.
func ViaIndices(path, via []int) []int {
	first := make(map[int]int, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		first[path[i]] = i
	}
	out := make([]int, len(via))
	for i, v := range via {
		idx, ok := first[v]
		if !ok {
			idx = -1
		}
		out[i] = idx
	}

	return out
}
