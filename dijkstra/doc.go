// Package dijkstra runs single-source shortest-path sweeps over a core.Graph.
//
// A sweep settles nodes in order of increasing distance from the source using
// a binary min-heap with lazy decrease-key: improved distances are pushed as
// new entries and stale entries are skipped when popped. The result is a Tree
// holding the distance to and predecessor of every node, from which PathTo
// rebuilds any source→target path.
//
// The multi-stop optimizer runs one sweep per stop in parallel. Every sweep
// allocates its own Tree, so concurrent sweeps over one sealed graph share
// nothing mutable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (the heap may hold one entry per relaxation)
//
// Options:
//
//   - WithMaxDistance(d):      stop once the closest open node lies beyond d.
//   - WithInfEdgeThreshold(t): treat arcs with weight ≥ t as impassable.
//   - WithTargets(ids...):     stop as soon as every listed node is settled.
//
// Errors:
//
//   - core.ErrNilGraph        if g is nil.
//   - core.ErrInvalidNode     if source or a target is out of range.
//   - ErrBadMaxDistance       if MaxDistance < 0 (option constructor panics).
//   - ErrBadInfThreshold      if InfEdgeThreshold ≤ 0 (option constructor panics).
//
// Example:
//
//	tree, err := dijkstra.Sweep(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tree.Distance(5), tree.PathTo(5))
package dijkstra
