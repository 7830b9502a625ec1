// Package core provides the immutable weighted road graph shared by every
// routing algorithm in buzznav.
//
// The Graph G = (V,E) is shaped for campus road data:
//
//   - Dense integer node IDs 0..N-1 fixed at construction (NewGraph).
//   - Directed, non-negative float64 edge weights in meters; asymmetric
//     weights model one-way streets and parallel edges are kept as-is.
//   - Per-node geographic coordinates (latitude/longitude in degrees),
//     attached once via AttachCoordinates.
//   - Index-based adjacency: out[u] holds the arcs leaving u, so AddEdge is an
//     O(1) amortized append and Arcs(u) is an O(1) slice lookup.
//
// Lifecycle:
//
//	g := core.NewGraph(n)            // allocate N nodes
//	g.AddEdge(from, to, weight)      // write phase, single goroutine
//	core.AttachCoordinates(g, src)   // fails with ErrCoordinateMismatch
//	g.Seal()                         // read-only from here on
//
// The graph is write-once, read-many. There is no removal operation. After
// Seal any mutation returns ErrSealed, and concurrent readers (A* segment
// workers, Dijkstra sweeps) need no locking because nothing writes.
//
// Core Methods:
//
//	NewGraph(n int) *Graph                    // O(N)
//	AddEdge(from, to int, w float64) error    // O(1) amortized
//	AttachCoordinates(g, src) error           // O(N)
//	Seal()                                    // O(1)
//	Arcs(u int) []Arc                         // O(1)
//	Coord(u int) Coord                        // O(1)
//	NodeCount(), EdgeCount()                  // O(1)
//	Valid(id int) bool                        // O(1)
//
// Errors:
//
//	ErrInvalidNode        – node ID outside [0, NodeCount())
//	ErrBadWeight          – negative, NaN or infinite edge weight
//	ErrCoordinateMismatch – a node has no entry in the coordinate source
//	ErrSealed             – mutation attempted after Seal
package core
