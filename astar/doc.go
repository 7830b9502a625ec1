// Package astar implements single-pair A* search over a core.Graph.
//
// A* finds the least-cost path from a start node to a goal node by expanding
// nodes in order of f = g + h, where g is the best known cost from the start
// and h is a lower bound on the remaining cost to the goal. The default
// heuristic is the great-circle (haversine) distance to the goal, which never
// overestimates as long as every edge is at least as long as the straight
// line between its endpoints. That holds for road data measured along the
// road, and it also makes the heuristic consistent, so a node closed once is
// never reopened.
//
// Complexity:
//
//   - Time:  O((V + E) log V) in the worst case (h ≡ 0 degenerates to Dijkstra).
//   - Space: O(V + E)
//   - O(V) for the gScore / cameFrom / closed arrays.
//   - O(E) worst-case heap entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - Lazy deletion: improving a node pushes a fresh heap entry; the weaker
//     entry stays in the heap and is discarded when popped because the node
//     is already closed. Result.StalePops counts these discards.
//   - Ties between equal f values are broken by heap order and are not part
//     of the contract; the reported Distance is deterministic regardless.
//   - "No route" is not an error: Distance is +Inf and Path is nil.
package astar
