// Package bfs walks a core.Graph breadth-first, ignoring arc weights.
//
// The campus engine uses it for connectivity diagnostics: hop depths,
// parent links and the set of nodes reachable from a start node along
// directed arcs. Weighted questions belong to dijkstra and astar.
//
// Traversal supports cancellation through a context, a depth limit, an arc
// filter and visit hooks, all set with functional options.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
