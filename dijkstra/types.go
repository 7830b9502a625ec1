package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the sweep.
var (
	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero or negative InfEdgeThreshold, which
	// would make every arc impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a sweep.
//
// MaxDistance      – settle nodes only up to this distance. Default +Inf.
// InfEdgeThreshold – arcs with weight ≥ threshold are skipped. Default +Inf.
// Targets          – optional early exit once all of them are settled.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	Targets          []int
}

// Option represents a functional option for configuring Sweep.
type Option func(*Options)

// WithMaxDistance caps the explored radius. Panics on a negative value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks arcs with weight ≥ threshold as walls.
// Panics on a non-positive value.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithTargets stops the sweep once every listed node is settled. Distances
// to other nodes may then be left at +Inf or above their true value.
func WithTargets(ids ...int) Option {
	return func(o *Options) {
		o.Targets = append(o.Targets[:0:0], ids...)
	}
}

// DefaultOptions returns an unbounded sweep with no early exit.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
