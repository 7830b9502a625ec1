package astar

import (
	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/geo"
)

// Heuristic estimates the remaining cost from node to goal on g.
// It must never overestimate the true shortest distance.
type Heuristic func(g *core.Graph, node, goal int) float64

// Haversine is the default heuristic: the great-circle distance between the
// coordinates of node and goal.
func Haversine(g *core.Graph, node, goal int) float64 {
	return geo.Haversine(g.Coord(node), g.Coord(goal))
}

// Zero is the trivial heuristic. With it A* explores exactly like Dijkstra;
// handy for graphs without coordinates.
func Zero(*core.Graph, int, int) float64 { return 0 }

// Result is the outcome of one search.
type Result struct {
	// Distance is the total edge weight of Path, or +Inf if the goal is unreachable.
	Distance float64

	// Path lists node IDs from start to goal inclusive; nil when unreachable.
	Path []int

	// Expanded counts nodes closed during the search.
	Expanded int

	// StalePops counts heap entries discarded because their node was already closed.
	StalePops int
}

// Reachable reports whether the search found a route.
func (r Result) Reachable() bool { return len(r.Path) > 0 }

// Options configures a search.
//
// Heuristic – lower-bound estimate; default Haversine.
// OnExpand  – optional hook invoked each time a node is closed.
type Options struct {
	Heuristic Heuristic
	OnExpand  func(node int, gScore float64)
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithHeuristic replaces the default haversine heuristic.
// A nil heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a hook called when a node is closed, in closing order.
func WithOnExpand(fn func(node int, gScore float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns the haversine heuristic and no hooks.
func DefaultOptions() Options {
	return Options{Heuristic: Haversine}
}
