package instructions

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/geo"
)

// TurnVerb names a turn by its signed angle (positive = right).
func TurnVerb(angle float64) string {
	abs := math.Abs(angle)
	switch {
	case abs < 10:
		return "Continue straight"
	case abs >= 170:
		return "Make a U-turn"
	}

	side := "left"
	if angle > 0 {
		side = "right"
	}
	switch {
	case abs < 45:
		return "Turn slight " + side
	case abs < 135:
		return "Turn " + side
	default:
		return "Turn sharp " + side
	}
}

// Synthesize produces directions for path. Paths shorter than two nodes
// yield nil. landmarks may be nil, in which case every turn is "at the
// intersection". g must carry coordinates for every node on the path.
func Synthesize(g *core.Graph, path []int, start, end string, landmarks Landmarks, opts ...Option) []string {
	if g == nil || len(path) < 2 {
		return nil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := writer{g: g, cfg: cfg, landmarks: landmarks, out: make([]string, 0, len(path)+2)}
	w.emit("Start at %s", start)

	first := w.leg(path[0], path[1])
	if first.meters >= cfg.HeadMin {
		w.emit("Head %s for %.1f meters", geo.CompassDirection(first.bearing), first.meters)
	}

	prev := first.bearing
	for i := 1; i < len(path)-1; i++ {
		cur := w.leg(path[i], path[i+1])
		angle := geo.TurnAngle(prev, cur.bearing)
		if math.Abs(angle) > cfg.TurnThreshold {
			w.flushStraight(path[i])
			w.emit("%s %s", TurnVerb(angle), w.where(path[i]))
			if cur.meters >= cfg.ContinueMin {
				w.emit("Continue %s for %.1f meters", geo.CompassDirection(cur.bearing), cur.meters)
			}
		} else {
			w.straight += cur.meters
		}
		prev = cur.bearing
	}
	w.flushStraight(path[len(path)-1])

	w.emit("You have reached %s", end)

	return w.out
}

type hop struct {
	bearing float64
	meters  float64
}

// writer accumulates lines for one Synthesize call.
type writer struct {
	g         *core.Graph
	cfg       Options
	landmarks Landmarks
	out       []string
	straight  float64 // metres merged since the last announced turn
}

func (w *writer) emit(format string, args ...any) {
	w.out = append(w.out, fmt.Sprintf(format, args...))
}

func (w *writer) leg(u, v int) hop {
	a, b := w.g.Coord(u), w.g.Coord(v)
	return hop{bearing: geo.Bearing(a, b), meters: geo.Haversine(a, b)}
}

// where annotates the turn at node.
func (w *writer) where(node int) string {
	if w.landmarks == nil {
		return "at the intersection"
	}
	if name, ok := w.landmarks.NameAt(node); ok {
		return "at " + name
	}
	if b, d, ok := w.landmarks.Nearest(w.g.Coord(node)); ok && d < w.cfg.NearbyRadius {
		return "near " + b.Name
	}

	return "at the intersection"
}

// flushStraight reports and resets the merged straight run.
func (w *writer) flushStraight(node int) {
	if w.straight > 0 && w.cfg.Logger != nil {
		w.cfg.Logger.Debug("straight run merged",
			slog.Int("until_node", node),
			slog.Float64("distance_m", w.straight),
		)
	}
	w.straight = 0
}
