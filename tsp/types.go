package tsp

import "errors"

// Sentinel errors.
var (
	// ErrEmptyMatrix indicates a matrix with no rows.
	ErrEmptyMatrix = errors.New("tsp: empty matrix")

	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrBadEntry indicates a negative or NaN cost.
	ErrBadEntry = errors.New("tsp: cost must be non-negative")

	// ErrTooManyStops indicates n > MaxStops.
	ErrTooManyStops = errors.New("tsp: too many stops for exact search")

	// ErrUnreachable indicates that no visiting order connects every stop.
	ErrUnreachable = errors.New("tsp: stops are not mutually reachable")
)

const (
	// Unreachable is the finite cost stored for a missing pair.
	Unreachable = 1e15

	// UnreachableThreshold separates real totals from totals containing at
	// least one Unreachable leg.
	UnreachableThreshold = 1e14

	// MaxStops bounds n so the DP table stays within a few hundred MiB.
	MaxStops = 20
)

// Endpoints selects how the first and last stop are chosen.
type Endpoints int

const (
	// EndpointsFree lets the optimizer choose both ends of the path.
	EndpointsFree Endpoints = iota

	// EndpointsFixed starts the path at stop 0 and ends it at stop n-1.
	EndpointsFixed
)

// String returns "free" or "fixed".
func (e Endpoints) String() string {
	if e == EndpointsFixed {
		return "fixed"
	}

	return "free"
}

// ParseEndpoints maps "free" and "fixed" to an Endpoints value.
func ParseEndpoints(s string) (Endpoints, bool) {
	switch s {
	case "", "free":
		return EndpointsFree, true
	case "fixed":
		return EndpointsFixed, true
	default:
		return EndpointsFree, false
	}
}

// Options configures OpenPath.
type Options struct {
	Endpoints Endpoints
}

// Option represents a functional option for configuring OpenPath.
type Option func(*Options)

// WithEndpoints selects the endpoint policy.
func WithEndpoints(e Endpoints) Option {
	return func(o *Options) {
		o.Endpoints = e
	}
}

// DefaultOptions returns free endpoints.
func DefaultOptions() Options {
	return Options{Endpoints: EndpointsFree}
}

// PathResult is an optimal visiting order.
type PathResult struct {
	// Order lists every stop index exactly once, in visiting order.
	Order []int

	// Cost is the sum of dist[Order[i]][Order[i+1]].
	Cost float64
}
