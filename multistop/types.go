package multistop

import (
	"errors"

	"github.com/katalvlaran/buzznav/tsp"
)

// Sentinel errors.
var (
	// ErrNoStops indicates an empty stop list.
	ErrNoStops = errors.New("multistop: no stops requested")

	// ErrTooManyStops indicates more stops than Options.MaxStops.
	ErrTooManyStops = errors.New("multistop: too many stops")

	// ErrStopsUnreachable indicates that no visiting order connects all stops.
	ErrStopsUnreachable = errors.New("multistop: stops are not mutually reachable")
)

// DefaultMaxStops bounds a request; the DP table grows as 2ᴺ·N.
const DefaultMaxStops = 16

// Resolver maps a building name to its node. *building.Registry implements it.
type Resolver interface {
	Lookup(name string) (int, error)
}

// Options configures Optimize.
//
// MaxStops  – upper bound on len(names). Default DefaultMaxStops.
// Workers   – concurrent sweeps; ≤ 0 means GOMAXPROCS.
// Endpoints – tsp.EndpointsFree (default) or tsp.EndpointsFixed.
type Options struct {
	MaxStops  int
	Workers   int
	Endpoints tsp.Endpoints
}

// Option represents a functional option for configuring Optimize.
type Option func(*Options)

// WithMaxStops overrides MaxStops. Panics unless 1 ≤ n ≤ tsp.MaxStops.
func WithMaxStops(n int) Option {
	if n < 1 || n > tsp.MaxStops {
		panic("multistop: WithMaxStops out of range")
	}
	return func(o *Options) { o.MaxStops = n }
}

// WithWorkers bounds the number of concurrent sweeps.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithEndpoints selects the endpoint policy of the visiting order.
func WithEndpoints(e tsp.Endpoints) Option {
	return func(o *Options) { o.Endpoints = e }
}

// DefaultOptions returns free endpoints, DefaultMaxStops and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{MaxStops: DefaultMaxStops, Endpoints: tsp.EndpointsFree}
}

// Matrix holds pairwise shortest distances and paths between stops.
// Dist[i][j] is tsp.Unreachable and Paths[i][j] nil when j cannot be
// reached from i.
type Matrix struct {
	Nodes []int
	Dist  [][]float64
	Paths [][][]int
}

// Result is an optimized multi-stop route.
type Result struct {
	// Distance is the optimal total reported by the DP.
	Distance float64
	// Path is the merged node sequence.
	Path []int
	// Order lists input stop indices in visiting order.
	Order []int
	// Names lists stop names in visiting order.
	Names []string
	// Stops lists stop nodes in visiting order.
	Stops []int
}
