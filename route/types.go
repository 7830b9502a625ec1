package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/buzznav/astar"
)

// ErrPartialRouteUnreachable indicates that at least one segment of a
// via-point journey has no route. It is always carried by a *SegmentError.
var ErrPartialRouteUnreachable = errors.New("route: a segment of the journey is unreachable")

// SegmentError names the first unreachable segment of a journey.
type SegmentError struct {
	// Index is the segment position, 0 for start→via[0].
	Index int
	// From and To are the segment's endpoint node IDs.
	From, To int
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("route: segment %d (%d→%d) is unreachable", e.Index, e.From, e.To)
}

// Unwrap lets errors.Is match ErrPartialRouteUnreachable.
func (e *SegmentError) Unwrap() error { return ErrPartialRouteUnreachable }

// Result is a merged journey.
type Result struct {
	// Distance is the sum of the segment distances.
	Distance float64
	// Path is the merged node sequence, start to goal.
	Path []int
	// Via holds, for each via point, the index of its first occurrence in Path.
	Via []int
	// Segments keeps the per-segment A* outcomes in journey order.
	Segments []astar.Result
}
