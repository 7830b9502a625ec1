// Package tsp solves the open-path travelling-salesman problem exactly with
// the Held–Karp bitmask dynamic program.
//
// Input is an n×n matrix of pairwise costs (usually shortest-path distances
// between the stops of a multi-stop request). OpenPath returns the visiting
// order of minimum total cost that touches every stop exactly once without
// returning to the first.
//
// DP definition:
//
//	dp[mask][last] = min cost of a path that visits exactly the stops in mask
//	                 and ends at last.
//	dp[mask][last] = min over k ∈ mask\{last} of dp[mask\{last}][k] + dist[k][last]
//
// Endpoints:
//
//   - EndpointsFree (default): every singleton is a base case (dp[{i}][i] = 0)
//     and the answer is min over i of dp[full][i]. The optimizer picks both
//     ends.
//   - EndpointsFixed: only dp[{0}][0] = 0 is seeded and the answer is
//     dp[full][n-1], so stop 0 starts and stop n-1 ends the path.
//
// Unreachable pairs:
//
// Entries that are +Inf or ≥ Unreachable are replaced by the finite sentinel
// Unreachable so DP arithmetic stays well-defined. A best cost above
// UnreachableThreshold means some leg of every order is missing, reported as
// ErrUnreachable.
//
// Complexity:
//
//   - Time:  O(2ⁿ · n²)
//   - Space: O(2ⁿ · n)
//
// n is the number of stops, not the size of the road graph; MaxStops caps it.
package tsp
