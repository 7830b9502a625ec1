package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node the walk never touched.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Unreached is the Depth and Parent value of a node the walk never touched.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. A non-nil error aborts the
	// walk and is returned wrapped.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterArc can skip arcs by returning false.
	FilterArc func(from, to int, weight float64) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run for every dequeued node.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterArc skips arcs when fn returns false.
func WithFilterArc(fn func(from, to int, weight float64) bool) Option {
	return func(o *Options) { o.FilterArc = fn }
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: hops from the start per node, Unreached when not visited.
//   - Parent: predecessor in the BFS tree, Unreached for the start and
//     unvisited nodes.
type BFSResult struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether node was visited.
func (r *BFSResult) Reached(node int) bool {
	return node >= 0 && node < len(r.Depth) && r.Depth[node] != Unreached
}

// PathTo reconstructs the fewest-hop path from the start node to dest.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
