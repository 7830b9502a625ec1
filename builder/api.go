package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/geo"
)

// Constructor lays out sites and arcs on a plan using the resolved config.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(p *Plan, cfg builderConfig) error

// Plan is the intermediate layout a Constructor fills in: sites with
// coordinates plus directed arcs. BuildGraph turns it into a core.Graph.
type Plan struct {
	sites []core.Coord
	arcs  []plannedArc
}

// plannedArc carries an explicit weight, or NaN for "derive from geometry".
type plannedArc struct {
	from, to int
	weight   float64
}

// AddSite appends a site and returns its node ID.
func (p *Plan) AddSite(c core.Coord) int {
	p.sites = append(p.sites, c)
	return len(p.sites) - 1
}

// Connect adds a one-way arc whose weight is derived from geometry.
func (p *Plan) Connect(from, to int) {
	p.arcs = append(p.arcs, plannedArc{from: from, to: to, weight: math.NaN()})
}

// ConnectBoth adds arcs in both directions; each gets its own stretch draw.
func (p *Plan) ConnectBoth(u, v int) {
	p.Connect(u, v)
	p.Connect(v, u)
}

// ConnectWeighted adds a one-way arc with a fixed weight.
func (p *Plan) ConnectWeighted(from, to int, w float64) {
	p.arcs = append(p.arcs, plannedArc{from: from, to: to, weight: w})
}

// Sites reports the number of sites laid out so far.
func (p *Plan) Sites() int { return len(p.sites) }

// BuildGraph resolves options, runs con on an empty plan and materializes the
// result as a sealed graph with coordinates attached.
//
// Arcs without an explicit weight get geo.Haversine(from, to) × stretch.
// Any error is wrapped with "BuildGraph: %w".
//
// Complexity: O(V + E) on top of the constructor.
func BuildGraph(con Constructor, opts ...BuilderOption) (*core.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.stretchMin != cfg.stretchMax && cfg.rng == nil {
		return nil, fmt.Errorf("BuildGraph: stretch range: %w", ErrNeedRandSource)
	}

	p := &Plan{}
	if err := con(p, cfg); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	g := core.NewGraph(len(p.sites))
	for _, a := range p.arcs {
		w := a.weight
		if math.IsNaN(w) && a.from >= 0 && a.from < len(p.sites) && a.to >= 0 && a.to < len(p.sites) {
			w = geo.Haversine(p.sites[a.from], p.sites[a.to]) * cfg.stretch()
		}
		if err := g.AddEdge(a.from, a.to, w); err != nil {
			return nil, fmt.Errorf("BuildGraph: arc %d→%d: %w: %w", a.from, a.to, ErrConstructFailed, err)
		}
	}
	if err := core.AttachCoordinates(g, core.CoordSlice(p.sites)); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	g.Seal()

	return g, nil
}

// offset returns the coordinate dx metres east and dy metres north of origin.
func offset(origin core.Coord, dx, dy float64) core.Coord {
	const degPerMetre = 180 / (math.Pi * geo.EarthRadius)
	return core.Coord{
		Lat: origin.Lat + dy*degPerMetre,
		Lon: origin.Lon + dx*degPerMetre/math.Cos(origin.Lat*math.Pi/180),
	}
}
