package tsp

import (
	"fmt"
	"math"
)

// noPred marks a DP cell without a predecessor stop.
const noPred = -1

// OpenPath returns the cheapest order visiting every stop of dist once.
//
// Returns ErrEmptyMatrix, ErrNonSquare, ErrBadEntry or ErrTooManyStops for
// bad input and ErrUnreachable when every order crosses a missing pair.
// A single stop yields Order [0] with Cost 0.
//
// Ties are broken toward the lowest stop index, so results are deterministic.
//
// Complexity: O(2ⁿ · n²) time, O(2ⁿ · n) space.
func OpenPath(dist [][]float64, opts ...Option) (PathResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	d, err := normalize(dist)
	if err != nil {
		return PathResult{}, err
	}
	n := len(d)
	if n == 1 {
		return PathResult{Order: []int{0}}, nil
	}

	s := newSolver(d, cfg.Endpoints)
	s.fill()

	last, best := s.best()
	if last < 0 || best > UnreachableThreshold {
		return PathResult{}, fmt.Errorf("%w: best=%g", ErrUnreachable, best)
	}

	return PathResult{Order: s.reconstruct(last), Cost: best}, nil
}

// solver holds the flat DP tables for one OpenPath call.
// Cell (mask, last) lives at index mask*n + last.
type solver struct {
	d      [][]float64
	n      int
	full   int
	ends   Endpoints
	dp     []float64
	parent []int8
}

func newSolver(d [][]float64, ends Endpoints) *solver {
	n := len(d)
	size := (1 << n) * n
	s := &solver{
		d:      d,
		n:      n,
		full:   1<<n - 1,
		ends:   ends,
		dp:     make([]float64, size),
		parent: make([]int8, size),
	}
	for i := range s.dp {
		s.dp[i] = math.Inf(1)
		s.parent[i] = noPred
	}

	// Base cases.
	if ends == EndpointsFixed {
		s.dp[1*n+0] = 0
	} else {
		for i := 0; i < n; i++ {
			s.dp[(1<<i)*n+i] = 0
		}
	}

	return s
}

// fill evaluates masks in increasing order so every subset is final before
// any superset reads it.
func (s *solver) fill() {
	n := s.n
	for mask := 1; mask <= s.full; mask++ {
		if mask&(mask-1) == 0 {
			continue // singletons are base cases
		}
		if s.ends == EndpointsFixed && mask&1 == 0 {
			continue // every fixed path starts at stop 0
		}
		for last := 0; last < n; last++ {
			if mask&(1<<last) == 0 {
				continue
			}
			prev := mask ^ (1 << last)
			cell := mask*n + last
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				cand := s.dp[prev*n+k] + s.d[k][last]
				if cand < s.dp[cell] {
					s.dp[cell] = cand
					s.parent[cell] = int8(k)
				}
			}
		}
	}
}

// best picks the terminal state: any last stop when free, n-1 when fixed.
func (s *solver) best() (int, float64) {
	row := s.full * s.n
	if s.ends == EndpointsFixed {
		last := s.n - 1
		if math.IsInf(s.dp[row+last], 1) {
			return -1, math.Inf(1)
		}
		return last, s.dp[row+last]
	}

	last, best := -1, math.Inf(1)
	for i := 0; i < s.n; i++ {
		if s.dp[row+i] < best {
			best = s.dp[row+i]
			last = i
		}
	}

	return last, best
}

// reconstruct walks parent pointers back from (full, last).
func (s *solver) reconstruct(last int) []int {
	order := make([]int, s.n)
	mask := s.full
	for pos := s.n - 1; pos >= 0; pos-- {
		order[pos] = last
		p := int(s.parent[mask*s.n+last])
		mask ^= 1 << last
		last = p
	}

	return order
}
