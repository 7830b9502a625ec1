package navigator

import (
	"context"
	"errors"

	"github.com/katalvlaran/buzznav/building"
	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/multistop"
	"github.com/katalvlaran/buzznav/route"
)

// Sentinel errors.
var (
	// ErrNoRouteFound indicates that the graph has no path between two buildings.
	ErrNoRouteFound = errors.New("navigator: no route found")

	// ErrNotReady indicates a missing graph or registry.
	ErrNotReady = errors.New("navigator: graph and buildings are required")

	// ErrGraphNotSealed indicates a graph that can still be mutated.
	ErrGraphNotSealed = errors.New("navigator: graph is not sealed")
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the consumer-facing answer to a routing request.
type Result struct {
	Status       string       `json:"status"`
	Distance     float64      `json:"total_distance"`
	Path         []int        `json:"path"`
	Coords       [][2]float64 `json:"path_coordinates"` // [lat, lon] per path node
	Via          []int        `json:"via_indices,omitempty"`
	Order        []string     `json:"order,omitempty"` // tour visiting order
	Instructions []string     `json:"instructions"`
	Message      string       `json:"message,omitempty"`
}

// Failure renders err as an error Result.
func Failure(err error) Result {
	return Result{Status: StatusError, Message: err.Error()}
}

// Report summarises dataset health.
type Report struct {
	Nodes          int      `json:"nodes"`
	Edges          int      `json:"edges"`
	Buildings      int      `json:"buildings"`
	Coordinates    bool     `json:"coordinates"`
	Origin         string   `json:"origin,omitempty"`
	ReachableNodes int      `json:"reachable_nodes"`
	Unreachable    []string `json:"unreachable_buildings"`

	// Strongly connected components; buildings outside the largest one
	// cannot share a round trip with most of the campus.
	Components       int      `json:"components"`
	LargestComponent int      `json:"largest_component"`
	Stranded         []string `json:"stranded_buildings"`
}

// Outcome classifies a request result for metrics and transports.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeInvalid     Outcome = "invalid"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeUnreachable Outcome = "unreachable"
	OutcomeCanceled    Outcome = "canceled"
	OutcomeInternal    Outcome = "internal"
)

// Classify maps an error returned by a Navigator to its Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, building.ErrBuildingNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrNoRouteFound),
		errors.Is(err, route.ErrPartialRouteUnreachable),
		errors.Is(err, multistop.ErrStopsUnreachable):
		return OutcomeUnreachable
	case errors.Is(err, multistop.ErrNoStops),
		errors.Is(err, multistop.ErrTooManyStops),
		errors.Is(err, building.ErrEmptyName),
		errors.Is(err, core.ErrInvalidNode):
		return OutcomeInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeInternal
	}
}
