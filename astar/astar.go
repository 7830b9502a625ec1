package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/internal/pq"
)

// noParent marks a node without a predecessor in cameFrom.
const noParent = -1

// ShortestPath computes the least-cost path from start to goal on g.
//
// Returns:
//
//   - Result.Distance: total weight of the path, +Inf when goal is unreachable.
//   - Result.Path: start … goal inclusive, nil when unreachable.
//   - err: non-nil only for invalid input (nil graph, IDs out of range).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. start and goal must lie in [0, N) (core.ErrInvalidNode).
//
// With the default heuristic every node referenced must carry coordinates;
// attaching them is the loader's job.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, goal int, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, core.ErrNilGraph
	}
	if !g.Valid(start) {
		return Result{}, fmt.Errorf("astar: start=%d: %w", start, core.ErrInvalidNode)
	}
	if !g.Valid(goal) {
		return Result{}, fmt.Errorf("astar: goal=%d: %w", goal, core.ErrInvalidNode)
	}

	// 3) Run the search.
	s := newSearch(g, goal, cfg)
	return s.run(start), nil
}

// search holds the mutable state for a single A* execution.
// Each call allocates its own arrays, so concurrent searches on one graph
// never share state.
type search struct {
	g        *core.Graph
	goal     int
	h        Heuristic
	onExpand func(int, float64)

	gScore   []float64 // best known cost from start
	cameFrom []int     // predecessor on the best known path
	closed   []bool    // node finalized
	open     *pq.Queue // frontier keyed by fScore

	expanded  int
	stalePops int
}

// newSearch allocates per-node arrays sized to the whole graph.
func newSearch(g *core.Graph, goal int, cfg Options) *search {
	n := g.NodeCount()
	s := &search{
		g:        g,
		goal:     goal,
		h:        cfg.Heuristic,
		onExpand: cfg.OnExpand,
		gScore:   make([]float64, n),
		cameFrom: make([]int, n),
		closed:   make([]bool, n),
		open:     pq.New(n),
	}
	for i := 0; i < n; i++ {
		s.gScore[i] = math.Inf(1)
		s.cameFrom[i] = noParent
	}

	return s
}

// run is the main loop: pop the lowest fScore, close it, relax its arcs.
func (s *search) run(start int) Result {
	s.gScore[start] = 0
	s.open.Push(start, s.h(s.g, start, s.goal))

	for s.open.Len() > 0 {
		u, _ := s.open.Pop()

		// Stale entry for an already finalized node: discard lazily.
		if s.closed[u] {
			s.stalePops++
			continue
		}
		s.closed[u] = true
		s.expanded++
		if s.onExpand != nil {
			s.onExpand(u, s.gScore[u])
		}

		if u == s.goal {
			return Result{
				Distance:  s.gScore[u],
				Path:      s.reconstruct(u),
				Expanded:  s.expanded,
				StalePops: s.stalePops,
			}
		}

		s.relax(u)
	}

	return Result{
		Distance:  math.Inf(1),
		Expanded:  s.expanded,
		StalePops: s.stalePops,
	}
}

// relax tries to improve every open neighbour of u.
// Closed neighbours are never reopened.
func (s *search) relax(u int) {
	base := s.gScore[u]
	for _, a := range s.g.Arcs(u) {
		v := a.To
		if s.closed[v] {
			continue
		}
		tentative := base + a.Weight
		if tentative >= s.gScore[v] {
			continue
		}
		s.gScore[v] = tentative
		s.cameFrom[v] = u
		s.open.Push(v, tentative+s.h(s.g, v, s.goal))
	}
}

// reconstruct follows cameFrom from goal back to start and reverses the walk.
func (s *search) reconstruct(goal int) []int {
	var path []int
	for cur := goal; cur != noParent; cur = s.cameFrom[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
