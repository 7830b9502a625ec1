package multistop

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/route"
	"github.com/katalvlaran/buzznav/tsp"
)

// Optimize resolves names, computes the pairwise table and returns the
// cheapest route visiting every stop once.
//
// Errors:
//
//   - ErrNoStops, ErrTooManyStops for bad request sizes.
//   - the resolver's error (building.ErrBuildingNotFound) for unknown names.
//   - ErrStopsUnreachable when no order connects all stops.
//   - core errors, parallel.ErrWorkerPanic or ctx.Err() otherwise.
//
// A single stop yields Path [node] with Distance 0.
func Optimize(ctx context.Context, g *core.Graph, resolver Resolver, names []string, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, core.ErrNilGraph
	}
	if len(names) == 0 {
		return Result{}, ErrNoStops
	}
	if len(names) > cfg.MaxStops {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyStops, len(names), cfg.MaxStops)
	}

	nodes := make([]int, len(names))
	for i, name := range names {
		id, err := resolver.Lookup(name)
		if err != nil {
			return Result{}, err
		}
		nodes[i] = id
	}

	if len(nodes) == 1 {
		return Result{
			Path:  []int{nodes[0]},
			Order: []int{0},
			Names: []string{names[0]},
			Stops: []int{nodes[0]},
		}, nil
	}

	m, err := Pairwise(ctx, g, nodes, cfg.Workers)
	if err != nil {
		return Result{}, err
	}

	best, err := tsp.OpenPath(m.Dist, tsp.WithEndpoints(cfg.Endpoints))
	switch {
	case errors.Is(err, tsp.ErrUnreachable):
		return Result{}, fmt.Errorf("%w: %w", ErrStopsUnreachable, err)
	case errors.Is(err, tsp.ErrTooManyStops):
		return Result{}, fmt.Errorf("%w: %w", ErrTooManyStops, err)
	case err != nil:
		return Result{}, err
	}

	return Result{
		Distance: best.Cost,
		Path:     Assemble(m, best.Order),
		Order:    best.Order,
		Names:    pick(names, best.Order),
		Stops:    pick(nodes, best.Order),
	}, nil
}

// Assemble concatenates the pairwise sub-paths along order.
func Assemble(m *Matrix, order []int) []int {
	if len(order) == 1 {
		return []int{m.Nodes[order[0]]}
	}
	segs := make([][]int, 0, len(order))
	for k := 1; k < len(order); k++ {
		segs = append(segs, m.Paths[order[k-1]][order[k]])
	}

	return route.Merge(segs...)
}

func pick[T any](src []T, order []int) []T {
	out := make([]T, len(order))
	for i, idx := range order {
		out[i] = src[idx]
	}

	return out
}
