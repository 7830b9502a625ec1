package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states.
const (
	White = iota // not discovered yet
	Gray         // on the Tarjan stack
	Black        // assigned to a component
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Option configures Components.
type Option func(*Options)

// Options holds parameters for a component search.
type Options struct {
	// Ctx allows cancellation; checked every CheckEvery discoveries.
	Ctx context.Context

	// CheckEvery is the number of discoveries between context checks.
	CheckEvery int
}

// DefaultOptions returns a background context checked every 1024 discoveries.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), CheckEvery: 1024}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCheckEvery overrides CheckEvery; n must be positive.
func WithCheckEvery(n int) Option {
	return func(o *Options) { o.CheckEvery = n }
}

// SCCResult labels every node with its component.
//
// Components are numbered in the order Tarjan completes them, which is a
// reverse topological order of the condensation: arcs between components
// only go from higher to lower ids.
type SCCResult struct {
	// Component[v] is the component id of node v.
	Component []int
	// Sizes[c] is the node count of component c.
	Sizes []int
}

// Count returns the number of components.
func (r *SCCResult) Count() int { return len(r.Sizes) }

// Largest returns the id of the biggest component, the lowest id on ties,
// or -1 for an empty graph.
func (r *SCCResult) Largest() int {
	best := -1
	for c, size := range r.Sizes {
		if best < 0 || size > r.Sizes[best] {
			best = c
		}
	}

	return best
}

// Same reports whether u and v are mutually reachable.
func (r *SCCResult) Same(u, v int) bool {
	if u < 0 || v < 0 || u >= len(r.Component) || v >= len(r.Component) {
		return false
	}

	return r.Component[u] == r.Component[v]
}
