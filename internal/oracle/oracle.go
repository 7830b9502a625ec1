// Package oracle computes reference answers with gonum so tests can check the
// routing packages against an independent implementation.
package oracle

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/buzznav/core"
)

// Reference mirrors a core.Graph as a gonum weighted digraph.
// Parallel arcs collapse to the cheapest one; self-loops are dropped since
// they never lie on a shortest path.
type Reference struct {
	g *simple.WeightedDirectedGraph
}

// New copies g into a gonum graph.
func New(g *core.Graph) *Reference {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for id := 0; id < g.NodeCount(); id++ {
		wg.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if cur := wg.WeightedEdge(int64(e.From), int64(e.To)); cur != nil && cur.Weight() <= e.Weight {
			continue
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}

	return &Reference{g: wg}
}

// From returns shortest distances from src to every node (+Inf if unreachable).
func (r *Reference) From(src int) []float64 {
	sh := path.DijkstraFrom(simple.Node(src), r.g)
	n := r.g.Nodes().Len()
	out := make([]float64, n)
	for v := 0; v < n; v++ {
		out[v] = sh.WeightTo(int64(v))
	}

	return out
}

// Distance returns the shortest distance from src to dst.
func (r *Reference) Distance(src, dst int) float64 {
	return path.DijkstraFrom(simple.Node(src), r.g).WeightTo(int64(dst))
}

// Path returns one shortest node sequence from src to dst, nil if unreachable.
func (r *Reference) Path(src, dst int) []int {
	nodes, w := path.DijkstraFrom(simple.Node(src), r.g).To(int64(dst))
	if math.IsInf(w, 1) {
		return nil
	}

	return ids(nodes)
}

func ids(nodes []graph.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}

	return out
}

// BestOrder brute-forces every visiting order of the n stops described by the
// square matrix dist and returns the cheapest open-path cost and its order.
// When fixed is true only orders starting at 0 and ending at n-1 are
// considered. Costs use plain float addition, so +Inf marks infeasible orders.
func BestOrder(dist [][]float64, fixed bool) (float64, []int) {
	n := len(dist)
	if n == 0 {
		return math.Inf(1), nil
	}
	best := math.Inf(1)
	var order []int
	for _, perm := range combin.Permutations(n, n) {
		if fixed && (perm[0] != 0 || perm[n-1] != n-1) {
			continue
		}
		cost := 0.0
		for i := 1; i < n; i++ {
			cost += dist[perm[i-1]][perm[i]]
		}
		if cost < best {
			best = cost
			order = perm
		}
	}

	return best, order
}

// Components labels every node with a strongly connected component id.
// Two nodes share a label iff they are mutually reachable; label values
// themselves are arbitrary.
func (r *Reference) Components() []int {
	out := make([]int, r.g.Nodes().Len())
	for c, comp := range topo.TarjanSCC(r.g) {
		for _, n := range comp {
			out[n.ID()] = c
		}
	}

	return out
}
