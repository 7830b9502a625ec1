package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/buzznav/bfs"
	"github.com/katalvlaran/buzznav/builder"
	"github.com/katalvlaran/buzznav/core"
	"github.com/stretchr/testify/require"
)

// chain builds 0→1→2→3 plus a detached 4→0.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 500))
	require.NoError(t, g.AddEdge(4, 0, 1))
	g.Seal()
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, core.ErrNilGraph)

	g := chain(t)
	_, err = bfs.BFS(g, 9)
	require.ErrorIs(t, err, core.ErrInvalidNode)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DirectedDepths(t *testing.T) {
	res, err := bfs.BFS(chain(t), 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, res.Order)
	require.Equal(t, []int{0, 1, 2, 3, bfs.Unreached}, res.Depth)
	require.False(t, res.Reached(4))

	path, err := res.PathTo(3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = res.PathTo(4)
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_GridLayers(t *testing.T) {
	g, err := builder.BuildGraph(builder.Grid(3, 3))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, 9)
	for i := 1; i < len(res.Order); i++ {
		require.LessOrEqual(t, res.Depth[res.Order[i-1]], res.Depth[res.Order[i]])
	}
	// Opposite corner is 4 hops away on a 3×3 grid.
	require.Equal(t, 4, res.Depth[8])
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)

	short := func(_, _ int, w float64) bool { return w < 100 }
	reach, err := bfs.Reachable(g, 0, bfs.WithFilterArc(short))
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true, false, false}, reach)
}

func TestBFS_HooksAndCancel(t *testing.T) {
	g := chain(t)

	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(node, _ int) error {
		if node == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
