package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/buzznav/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g from start along directed arcs.
// Returns core.ErrNilGraph or core.ErrInvalidNode for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Valid(start) {
		return nil, fmt.Errorf("bfs: start=%d: %w", start, core.ErrInvalidNode)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start, 0, Unreached)
	return w.res, w.loop()
}

// Reachable reports, per node, whether it can be reached from start.
func Reachable(g *core.Graph, start int, opts ...Option) ([]bool, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(res.Depth))
	for _, v := range res.Order {
		out[v] = true
	}

	return out, nil
}

func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(u, d); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
			}
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for _, a := range w.graph.Arcs(u) {
			if w.res.Depth[a.To] != Unreached {
				continue
			}
			if w.opts.FilterArc != nil && !w.opts.FilterArc(u, a.To, a.Weight) {
				continue
			}
			w.enqueue(a.To, d+1, u)
		}
	}

	return nil
}
