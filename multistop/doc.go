// Package multistop finds the cheapest order to visit a set of named stops
// and returns the full node path.
//
// Optimize works in four phases:
//
//  1. Resolve every name through the building registry. Any miss aborts with
//     building.ErrBuildingNotFound before search work starts.
//  2. Pairwise: one Dijkstra sweep per stop, run in parallel. Each worker owns
//     its sweep arrays and writes only its own row of the N×N distance and
//     sub-path tables. Unreachable pairs hold tsp.Unreachable.
//  3. Held–Karp over the distance table (package tsp) picks the visiting
//     order. Totals above tsp.UnreachableThreshold fail with
//     ErrStopsUnreachable.
//  4. The sub-paths along that order are merged with route.Merge.
//
// Cost is O(N) sweeps over the road graph plus O(2ᴺ·N²) for the DP, where
// N is the number of stops.
package multistop
