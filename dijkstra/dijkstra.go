package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/internal/pq"
)

// noParent marks the source and every unreached node in Tree.prev.
const noParent = -1

// Tree is the outcome of one sweep: the best known distance to and the
// predecessor of every node. It is owned by the caller.
type Tree struct {
	source  int
	dist    []float64
	prev    []int
	settled int
}

// Source returns the node the sweep started from.
func (t *Tree) Source() int { return t.source }

// Settled counts nodes whose distance was finalized.
func (t *Tree) Settled() int { return t.settled }

// Distance returns the shortest distance from the source to v,
// +Inf when v is unreachable or out of range.
func (t *Tree) Distance(v int) float64 {
	if v < 0 || v >= len(t.dist) {
		return math.Inf(1)
	}

	return t.dist[v]
}

// Reachable reports whether v has a finite distance.
func (t *Tree) Reachable(v int) bool { return !math.IsInf(t.Distance(v), 1) }

// PathTo rebuilds the source→v path, nil when v is unreachable.
// PathTo(Source()) is the single-node path.
func (t *Tree) PathTo(v int) []int {
	if !t.Reachable(v) {
		return nil
	}
	var path []int
	for cur := v; cur != noParent; cur = t.prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Sweep computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. source and every target must be in range (core.ErrInvalidNode).
//
// Weights are validated by core at load time, so no negative-weight scan is
// needed here.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Sweep(g *core.Graph, source int, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Valid(source) {
		return nil, fmt.Errorf("dijkstra: source=%d: %w", source, core.ErrInvalidNode)
	}
	for _, t := range cfg.Targets {
		if !g.Valid(t) {
			return nil, fmt.Errorf("dijkstra: target=%d: %w", t, core.ErrInvalidNode)
		}
	}

	r := newRunner(g, source, cfg)
	r.process()

	return r.tree, nil
}

// runner holds the mutable state for a single sweep.
type runner struct {
	g       *core.Graph
	options Options
	tree    *Tree
	visited []bool
	pending int    // targets not yet settled
	target  []bool // nil without targets
	pq      *pq.Queue
}

func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.NodeCount()
	t := &Tree{
		source: source,
		dist:   make([]float64, n),
		prev:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		t.dist[i] = math.Inf(1)
		t.prev[i] = noParent
	}
	t.dist[source] = 0

	r := &runner{
		g:       g,
		options: cfg,
		tree:    t,
		visited: make([]bool, n),
		pq:      pq.New(n),
	}
	if len(cfg.Targets) > 0 {
		r.target = make([]bool, n)
		for _, id := range cfg.Targets {
			if !r.target[id] {
				r.target[id] = true
				r.pending++
			}
		}
	}
	r.pq.Push(source, 0)

	return r
}

// process pops the closest node, settles it and relaxes its arcs until the
// heap is empty, the radius cap is hit, or every target is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		u, d := r.pq.Pop()
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.tree.settled++

		if r.target != nil && r.target[u] {
			r.pending--
			if r.pending == 0 {
				return
			}
		}

		r.relax(u)
	}
}

// relax tries to improve every neighbour of u through u.
func (r *runner) relax(u int) {
	dist, prev := r.tree.dist, r.tree.prev
	base := dist[u]
	for _, a := range r.g.Arcs(u) {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v := a.To
		if r.visited[v] {
			continue
		}
		nd := base + a.Weight
		if nd > r.options.MaxDistance || nd >= dist[v] {
			continue
		}
		dist[v] = nd
		prev[v] = u
		r.pq.Push(v, nd)
	}
}
