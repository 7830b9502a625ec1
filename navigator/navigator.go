package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/buzznav/astar"
	"github.com/katalvlaran/buzznav/bfs"
	"github.com/katalvlaran/buzznav/building"
	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/dfs"
	"github.com/katalvlaran/buzznav/instructions"
	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/katalvlaran/buzznav/multistop"
	"github.com/katalvlaran/buzznav/route"
)

// Navigator answers routing requests over one immutable campus.
// It is safe for concurrent use.
type Navigator struct {
	graph     *core.Graph
	buildings *building.Registry

	tourOpts  []multistop.Option
	instrOpts []instructions.Option
	astarOpts []astar.Option
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithTourOptions passes options to every multistop.Optimize call.
func WithTourOptions(opts ...multistop.Option) Option {
	return func(n *Navigator) { n.tourOpts = append(n.tourOpts, opts...) }
}

// WithInstructionOptions passes options to every instructions.Synthesize call.
func WithInstructionOptions(opts ...instructions.Option) Option {
	return func(n *Navigator) { n.instrOpts = append(n.instrOpts, opts...) }
}

// WithSearchOptions passes options to every A* segment search.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(n *Navigator) { n.astarOpts = append(n.astarOpts, opts...) }
}

// New wraps a sealed graph and its registry.
func New(g *core.Graph, reg *building.Registry, opts ...Option) (*Navigator, error) {
	if g == nil || reg == nil {
		return nil, ErrNotReady
	}
	if !g.Sealed() {
		return nil, ErrGraphNotSealed
	}
	n := &Navigator{graph: g, buildings: reg}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// Graph returns the underlying graph.
func (n *Navigator) Graph() *core.Graph { return n.graph }

// Navigate routes from start through each via building, in order, to end.
// Blank via names are ignored. Every name is resolved before any search
// runs; an unreachable leg fails the whole request.
func (n *Navigator) Navigate(ctx context.Context, start string, via []string, end string) (res Result, err error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	vias := make([]string, 0, len(via))
	for _, v := range via {
		if v = strings.TrimSpace(v); v != "" {
			vias = append(vias, v)
		}
	}

	ctx, span := startSpan(ctx, "Navigator.Navigate",
		attribute.String("route.start", start),
		attribute.String("route.end", end),
		attribute.Int("route.via_count", len(vias)),
	)
	began := time.Now()
	defer func() { finish(span, "navigate", began, &res, err) }()
	log := ctxlog.FromContext(ctx)

	names := make([]string, 0, len(vias)+2)
	names = append(names, start)
	names = append(names, vias...)
	names = append(names, end)
	nodes, err := n.resolve(names)
	if err != nil {
		log.Warn("navigate rejected", slog.String("error", err.Error()))
		return Result{}, err
	}

	r, err := route.ViaPoints(ctx, n.graph, nodes[0], nodes[len(nodes)-1], nodes[1:len(nodes)-1], n.astarOpts...)
	if err != nil {
		var se *route.SegmentError
		if errors.As(err, &se) {
			err = fmt.Errorf("navigator: %q to %q: %w", names[se.Index], names[se.Index+1], se)
		}
		log.Warn("navigate failed", slog.String("error", err.Error()))
		return Result{}, err
	}
	if math.IsInf(r.Distance, 1) {
		err = fmt.Errorf("%w: %q to %q", ErrNoRouteFound, start, end)
		log.Warn("navigate failed", slog.String("error", err.Error()))
		return Result{}, err
	}

	res = n.result(ctx, r.Path, r.Distance, start, end)
	res.Via = r.Via
	log.Info("route computed",
		slog.String("start", start),
		slog.String("end", end),
		slog.Int("via", len(vias)),
		slog.Float64("distance_m", res.Distance),
		slog.Int("nodes", len(res.Path)),
	)

	return res, nil
}

// Tour visits every named building in the cheapest order.
func (n *Navigator) Tour(ctx context.Context, names []string) (res Result, err error) {
	clean := make([]string, len(names))
	for i, name := range names {
		clean[i] = strings.TrimSpace(name)
	}

	ctx, span := startSpan(ctx, "Navigator.Tour", attribute.Int("tour.stops", len(clean)))
	began := time.Now()
	defer func() { finish(span, "tour", began, &res, err) }()
	log := ctxlog.FromContext(ctx)

	for i, name := range clean {
		if name == "" {
			err = fmt.Errorf("navigator: stop %d: %w", i, building.ErrEmptyName)
			log.Warn("tour rejected", slog.String("error", err.Error()))
			return Result{}, err
		}
	}

	t, err := multistop.Optimize(ctx, n.graph, n.buildings, clean, n.tourOpts...)
	if err != nil {
		log.Warn("tour failed", slog.Int("stops", len(clean)), slog.String("error", err.Error()))
		return Result{}, err
	}

	res = n.result(ctx, t.Path, t.Distance, t.Names[0], t.Names[len(t.Names)-1])
	res.Order = t.Names
	res.Via = route.ViaIndices(t.Path, t.Stops)
	log.Info("tour computed",
		slog.Int("stops", len(clean)),
		slog.String("order", strings.Join(t.Names, " -> ")),
		slog.Float64("distance_m", res.Distance),
	)

	return res, nil
}

// Buildings lists building names starting with prefix, ignoring case.
// An empty prefix lists all of them. limit ≤ 0 means no limit.
func (n *Navigator) Buildings(prefix string, limit int) []string {
	if prefix == "" && limit <= 0 {
		return n.buildings.Names()
	}

	return n.buildings.WithPrefix(prefix, limit)
}

// Diagnose counts the dataset, lists buildings that cannot be reached,
// hop-wise, from the first registered building and those outside the
// largest strongly connected component.
func (n *Navigator) Diagnose(ctx context.Context) (Report, error) {
	rep := Report{
		Nodes:       n.graph.NodeCount(),
		Edges:       n.graph.EdgeCount(),
		Buildings:   n.buildings.Len(),
		Coordinates: n.graph.HasCoordinates(),
		Unreachable: []string{},
		Stranded:    []string{},
	}
	scc, err := dfs.Components(n.graph, dfs.WithContext(ctx))
	if err != nil {
		return Report{}, fmt.Errorf("navigator: diagnose: %w", err)
	}
	rep.Components = scc.Count()
	all := n.buildings.Buildings()
	if largest := scc.Largest(); largest >= 0 {
		rep.LargestComponent = scc.Sizes[largest]
		for _, b := range all {
			if scc.Component[b.Node] != largest {
				rep.Stranded = append(rep.Stranded, b.Name)
			}
		}
	}
	if len(all) == 0 {
		return rep, nil
	}

	origin := all[0]
	reach, err := bfs.Reachable(n.graph, origin.Node, bfs.WithContext(ctx))
	if err != nil {
		return Report{}, fmt.Errorf("navigator: diagnose: %w", err)
	}
	rep.Origin = origin.Name
	for _, ok := range reach {
		if ok {
			rep.ReachableNodes++
		}
	}
	for _, b := range all[1:] {
		if !reach[b.Node] {
			rep.Unreachable = append(rep.Unreachable, b.Name)
		}
	}
	ctxlog.FromContext(ctx).Info("dataset diagnosed",
		slog.Int("nodes", rep.Nodes),
		slog.Int("edges", rep.Edges),
		slog.Int("buildings", rep.Buildings),
		slog.Int("unreachable", len(rep.Unreachable)),
		slog.Int("components", rep.Components),
	)

	return rep, nil
}

// resolve maps names to nodes, failing on the first unknown one.
func (n *Navigator) resolve(names []string) ([]int, error) {
	nodes := make([]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("navigator: stop %d: %w", i, building.ErrEmptyName)
		}
		id, err := n.buildings.Lookup(name)
		if err != nil {
			return nil, err
		}
		nodes[i] = id
	}

	return nodes, nil
}

func (n *Navigator) result(ctx context.Context, path []int, distance float64, start, end string) Result {
	coords := make([][2]float64, len(path))
	for i, id := range path {
		c := n.graph.Coord(id)
		coords[i] = [2]float64{c.Lat, c.Lon}
	}
	opts := append([]instructions.Option{instructions.WithLogger(ctxlog.FromContext(ctx))}, n.instrOpts...)

	return Result{
		Status:       StatusSuccess,
		Distance:     distance,
		Path:         path,
		Coords:       coords,
		Instructions: instructions.Synthesize(n.graph, path, start, end, n.buildings, opts...),
	}
}
