// Package dfs finds strongly connected components of a core.Graph with an
// iterative depth-first search (Tarjan).
//
// Two campus nodes in the same component can reach each other along one-way
// paths in both directions. Diagnostics use it to flag buildings that a
// round trip or a multi-stop tour could never connect.
//
// Complexity: O(V + E) time, O(V) space. No recursion, so deep one-way
// chains cannot exhaust the goroutine stack.
package dfs
