package core

import (
	"fmt"
	"math"
)

// NewGraph allocates a graph with n nodes (IDs 0..n-1) and no edges.
// A negative n is treated as zero.
//
// Complexity: O(n) time and memory.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{
		out:    make([][]Arc, n),
		coords: make([]Coord, n),
	}
}

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Reject mutation of a sealed graph (ErrSealed).
//  2. Validate both endpoints are in range (ErrInvalidNode).
//  3. Validate weight is finite and non-negative (ErrBadWeight).
//  4. Append Arc{to, weight} to out[from].
//
// Parallel edges and self-loops are stored as given; searches simply relax
// each of them.
//
// Complexity: O(1) amortized.
// Concurrency: not safe for concurrent writers; the load phase is single-threaded.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if g.sealed {
		return ErrSealed
	}
	if !g.Valid(from) {
		return fmt.Errorf("%w: from=%d (nodes=%d)", ErrInvalidNode, from, len(g.out))
	}
	if !g.Valid(to) {
		return fmt.Errorf("%w: to=%d (nodes=%d)", ErrInvalidNode, to, len(g.out))
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, from, to, weight)
	}

	g.out[from] = append(g.out[from], Arc{To: to, Weight: weight})
	g.edges++

	return nil
}

// Seal freezes the graph. Every later AddEdge or AttachCoordinates call
// returns ErrSealed. Sealing twice is a no-op.
func (g *Graph) Seal() { g.sealed = true }

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool { return g.sealed }

// NodeCount returns N, the number of nodes.
func (g *Graph) NodeCount() int { return len(g.out) }

// EdgeCount returns the number of directed arcs stored.
func (g *Graph) EdgeCount() int { return g.edges }

// Valid reports whether id lies in [0, NodeCount()).
func (g *Graph) Valid(id int) bool { return id >= 0 && id < len(g.out) }

// Arcs returns the arcs leaving u. The slice is owned by the graph and must
// not be modified. Out-of-range IDs yield nil.
func (g *Graph) Arcs(u int) []Arc {
	if !g.Valid(u) {
		return nil
	}

	return g.out[u]
}

// Coord returns the coordinates of node u. Out-of-range IDs yield the zero Coord.
func (g *Graph) Coord(u int) Coord {
	if !g.Valid(u) {
		return Coord{}
	}

	return g.coords[u]
}

// HasCoordinates reports whether AttachCoordinates completed successfully.
func (g *Graph) HasCoordinates() bool { return g.hasCoords }

// Edges returns a snapshot of every arc ordered by tail ID, then insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	res := make([]Edge, 0, g.edges)
	for u, arcs := range g.out {
		for _, a := range arcs {
			res = append(res, Edge{From: u, To: a.To, Weight: a.Weight})
		}
	}

	return res
}

// PathWeight sums the cheapest arc weight along consecutive nodes of path.
// It returns +Inf if some hop has no arc, and 0 for paths shorter than two nodes.
// Useful to verify a reported distance against the graph itself.
//
// Complexity: O(len(path) · maxDegree).
func (g *Graph) PathWeight(path []int) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		best := math.Inf(1)
		for _, a := range g.Arcs(path[i-1]) {
			if a.To == path[i] && a.Weight < best {
				best = a.Weight
			}
		}
		if math.IsInf(best, 1) {
			return best
		}
		total += best
	}

	return total
}
