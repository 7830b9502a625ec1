package instructions

import (
	"log/slog"

	"github.com/katalvlaran/buzznav/building"
	"github.com/katalvlaran/buzznav/core"
)

// Landmarks is the read side of the building registry used to annotate turns.
// *building.Registry implements it.
type Landmarks interface {
	NameAt(node int) (string, bool)
	Nearest(c core.Coord) (building.Building, float64, bool)
}

// Default thresholds.
const (
	DefaultHeadMin       = 5.0   // metres
	DefaultContinueMin   = 10.0  // metres
	DefaultTurnThreshold = 20.0  // degrees
	DefaultNearbyRadius  = 100.0 // metres
)

// Options configures Synthesize.
//
// HeadMin       – shortest first leg that earns a "Head …" line.
// ContinueMin   – shortest post-turn leg that earns a "Continue …" line.
// TurnThreshold – heading change (degrees) above which a turn is announced.
// NearbyRadius  – max distance for "near <building>" annotations.
// Logger        – optional debug sink for merged straight runs.
type Options struct {
	HeadMin       float64
	ContinueMin   float64
	TurnThreshold float64
	NearbyRadius  float64
	Logger        *slog.Logger
}

// Option represents a functional option for configuring Synthesize.
type Option func(*Options)

// WithHeadMin overrides HeadMin.
func WithHeadMin(m float64) Option {
	return func(o *Options) { o.HeadMin = m }
}

// WithContinueMin overrides ContinueMin.
func WithContinueMin(m float64) Option {
	return func(o *Options) { o.ContinueMin = m }
}

// WithTurnThreshold overrides TurnThreshold. Panics outside [0, 180).
func WithTurnThreshold(deg float64) Option {
	if deg < 0 || deg >= 180 {
		panic("instructions: turn threshold must be in [0,180)")
	}
	return func(o *Options) { o.TurnThreshold = deg }
}

// WithNearbyRadius overrides NearbyRadius.
func WithNearbyRadius(m float64) Option {
	return func(o *Options) { o.NearbyRadius = m }
}

// WithLogger sends straight-run bookkeeping to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the thresholds used by the campus directions.
func DefaultOptions() Options {
	return Options{
		HeadMin:       DefaultHeadMin,
		ContinueMin:   DefaultContinueMin,
		TurnThreshold: DefaultTurnThreshold,
		NearbyRadius:  DefaultNearbyRadius,
	}
}
