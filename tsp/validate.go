package tsp

import (
	"fmt"
	"math"
)

// normalize validates dist and returns a copy in which every unreachable
// entry holds the Unreachable sentinel.
//
// Contract:
//   - at least one row (ErrEmptyMatrix), at most MaxStops (ErrTooManyStops);
//   - every row has n entries (ErrNonSquare);
//   - no negative or NaN entry (ErrBadEntry).
//
// Complexity: O(n²).
func normalize(dist [][]float64) ([][]float64, error) {
	n := len(dist)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if n > MaxStops {
		return nil, fmt.Errorf("%w: n=%d > %d", ErrTooManyStops, n, MaxStops)
	}

	out := make([][]float64, n)
	for i, row := range dist {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
		out[i] = make([]float64, n)
		for j, c := range row {
			if c < 0 || math.IsNaN(c) {
				return nil, fmt.Errorf("%w: dist[%d][%d]=%v", ErrBadEntry, i, j, c)
			}
			if c >= Unreachable {
				c = Unreachable
			}
			out[i][j] = c
		}
	}

	return out, nil
}

// PathCost sums dist along order; an unreachable leg yields +Inf.
// Orders of length < 2 cost 0.
func PathCost(dist [][]float64, order []int) float64 {
	total := 0.0
	for i := 1; i < len(order); i++ {
		c := dist[order[i-1]][order[i]]
		if c >= Unreachable {
			return math.Inf(1)
		}
		total += c
	}

	return total
}
