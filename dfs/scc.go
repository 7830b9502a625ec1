package dfs

import (
	"fmt"

	"github.com/katalvlaran/buzznav/core"
)

// frame is one suspended vertex of the explicit DFS stack.
type frame struct {
	v    int
	next int // index of the next arc of v to explore
}

// tarjan holds the mutable state of one Components call.
type tarjan struct {
	g    *core.Graph
	opts Options

	index []int // discovery order, valid when state != White
	low   []int // lowest index reachable through the DFS subtree
	state []int8
	stack []int // Tarjan stack of Gray vertices
	calls []frame

	counter int
	res     *SCCResult
}

// Components labels every node of g with its strongly connected component.
// Returns core.ErrNilGraph, ErrOptionViolation or the context error.
func Components(g *core.Graph, opts ...Option) (*SCCResult, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.CheckEvery <= 0 {
		return nil, fmt.Errorf("%w: CheckEvery must be positive (%d)", ErrOptionViolation, o.CheckEvery)
	}

	n := g.NodeCount()
	t := &tarjan{
		g:     g,
		opts:  o,
		index: make([]int, n),
		low:   make([]int, n),
		state: make([]int8, n),
		res:   &SCCResult{Component: make([]int, n)},
	}
	for root := 0; root < n; root++ {
		if t.state[root] != White {
			continue
		}
		if err := t.walk(root); err != nil {
			return nil, err
		}
	}

	return t.res, nil
}

// discover gives v the next index and pushes it on both stacks.
func (t *tarjan) discover(v int) error {
	if t.counter%t.opts.CheckEvery == 0 {
		if err := t.opts.Ctx.Err(); err != nil {
			return err
		}
	}
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.state[v] = Gray
	t.stack = append(t.stack, v)
	t.calls = append(t.calls, frame{v: v})

	return nil
}

func (t *tarjan) walk(root int) error {
	if err := t.discover(root); err != nil {
		return err
	}
	for len(t.calls) > 0 {
		top := len(t.calls) - 1
		f := &t.calls[top]
		arcs := t.g.Arcs(f.v)
		if f.next < len(arcs) {
			w := arcs[f.next].To
			f.next++
			switch t.state[w] {
			case White:
				if err := t.discover(w); err != nil {
					return err
				}
			case Gray:
				t.low[f.v] = min(t.low[f.v], t.index[w])
			}
			continue
		}

		// All arcs of v explored: retire the frame.
		v := f.v
		t.calls = t.calls[:top]
		if t.low[v] == t.index[v] {
			t.emit(v)
		}
		if top > 0 {
			p := t.calls[top-1].v
			t.low[p] = min(t.low[p], t.low[v])
		}
	}

	return nil
}

// emit pops the component rooted at v off the Tarjan stack.
func (t *tarjan) emit(v int) {
	c := len(t.res.Sizes)
	size := 0
	for {
		last := len(t.stack) - 1
		w := t.stack[last]
		t.stack = t.stack[:last]
		t.state[w] = Black
		t.res.Component[w] = c
		size++
		if w == v {
			break
		}
	}
	t.res.Sizes = append(t.res.Sizes, size)
}
