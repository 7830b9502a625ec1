package navigator_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buzznav/builder"
	"github.com/katalvlaran/buzznav/building"
	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/katalvlaran/buzznav/multistop"
	"github.com/katalvlaran/buzznav/navigator"
	"github.com/katalvlaran/buzznav/route"
	"github.com/katalvlaran/buzznav/tsp"
)

func ctx() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

// square serves the one-way square 0→1→2→3 with buildings A..D on its corners.
func square(t *testing.T, opts ...navigator.Option) *navigator.Navigator {
	t.Helper()
	return squareWith(t, []string{"A", "B", "C", "D"}, opts...)
}

func squareWith(t *testing.T, names []string, opts ...navigator.Option) *navigator.Navigator {
	t.Helper()
	g, err := builder.BuildGraph(builder.Square())
	require.NoError(t, err)
	entries := make([]building.Entry, len(names))
	for i, n := range names {
		entries[i] = building.Entry{Name: n, Node: i}
	}
	reg, err := building.NewRegistry(g, entries)
	require.NoError(t, err)
	nav, err := navigator.New(g, reg, opts...)
	require.NoError(t, err)
	return nav
}

func TestNew_Validation(t *testing.T) {
	_, err := navigator.New(nil, nil)
	require.ErrorIs(t, err, navigator.ErrNotReady)

	g := core.NewGraph(1)
	reg, err := building.NewRegistry(g, nil)
	require.NoError(t, err)
	_, err = navigator.New(g, reg)
	require.ErrorIs(t, err, navigator.ErrGraphNotSealed)
}

func TestNavigate_Direct(t *testing.T) {
	res, err := square(t).Navigate(ctx(), "A", nil, "D")
	require.NoError(t, err)
	assert.Equal(t, navigator.StatusSuccess, res.Status)
	assert.Equal(t, 300.0, res.Distance)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	require.Len(t, res.Coords, 4)
	assert.Equal(t, [2]float64{33.7760, -84.3970}, res.Coords[0])
	assert.Nil(t, res.Via)
	require.NotEmpty(t, res.Instructions)
	assert.Equal(t, "Start at A", res.Instructions[0])
	assert.Equal(t, "You have reached D", res.Instructions[len(res.Instructions)-1])
}

func TestNavigate_ViaAndBlankVia(t *testing.T) {
	res, err := square(t).Navigate(ctx(), " A ", []string{"", "C", "  "}, "D")
	require.NoError(t, err)
	assert.Equal(t, 300.0, res.Distance)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, []int{2}, res.Via)
}

func TestNavigate_Failures(t *testing.T) {
	nav := square(t)

	_, err := nav.Navigate(ctx(), "D", nil, "A")
	require.ErrorIs(t, err, navigator.ErrNoRouteFound)
	assert.Equal(t, navigator.OutcomeUnreachable, navigator.Classify(err))

	_, err = nav.Navigate(ctx(), "A", []string{"D"}, "B")
	require.ErrorIs(t, err, route.ErrPartialRouteUnreachable)
	var se *route.SegmentError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Index)
	assert.Contains(t, err.Error(), `"D" to "B"`)

	_, err = nav.Navigate(ctx(), "A", []string{"Nowhere"}, "D")
	require.ErrorIs(t, err, building.ErrBuildingNotFound)
	assert.Equal(t, navigator.OutcomeNotFound, navigator.Classify(err))

	_, err = nav.Navigate(ctx(), "", nil, "D")
	require.ErrorIs(t, err, building.ErrEmptyName)
	assert.Equal(t, navigator.OutcomeInvalid, navigator.Classify(err))
}

func TestTour(t *testing.T) {
	res, err := square(t).Tour(ctx(), []string{"D", "A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Order)
	assert.Equal(t, 300.0, res.Distance)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, []int{0, 1, 3}, res.Via)
	assert.Equal(t, "Start at A", res.Instructions[0])
}

func TestTour_FixedEnds(t *testing.T) {
	nav := square(t, navigator.WithTourOptions(multistop.WithEndpoints(tsp.EndpointsFixed)))

	res, err := nav.Tour(ctx(), []string{"A", "B", "D"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Order)

	_, err = nav.Tour(ctx(), []string{"A", "D", "B"})
	require.ErrorIs(t, err, multistop.ErrStopsUnreachable)
}

func TestTour_Invalid(t *testing.T) {
	_, err := square(t).Tour(ctx(), nil)
	require.ErrorIs(t, err, multistop.ErrNoStops)
	assert.Equal(t, navigator.OutcomeInvalid, navigator.Classify(err))

	_, err = square(t).Tour(ctx(), []string{"A", "  ", "D"})
	require.ErrorIs(t, err, building.ErrEmptyName)
	assert.Contains(t, err.Error(), "stop 1")
	assert.Equal(t, navigator.OutcomeInvalid, navigator.Classify(err))
}

func TestBuildings(t *testing.T) {
	nav := squareWith(t, []string{"Library", "lab", "Gym", "Lawn"})
	assert.Equal(t, []string{"Gym", "lab", "Lawn", "Library"}, nav.Buildings("", 0))
	assert.Equal(t, []string{"lab", "Lawn"}, nav.Buildings("LA", 0))
	assert.Equal(t, []string{"lab"}, nav.Buildings("la", 1))
}

func TestDiagnose(t *testing.T) {
	rep, err := square(t).Diagnose(ctx())
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Nodes)
	assert.Equal(t, 3, rep.Edges)
	assert.Equal(t, 4, rep.Buildings)
	assert.True(t, rep.Coordinates)
	assert.Equal(t, "A", rep.Origin)
	assert.Equal(t, 4, rep.ReachableNodes)
	assert.Empty(t, rep.Unreachable)
	// Every corner of a one-way square is its own component; the lowest id
	// (the sink, node 3) wins the tie for largest.
	assert.Equal(t, 4, rep.Components)
	assert.Equal(t, 1, rep.LargestComponent)
	assert.Equal(t, []string{"A", "B", "C"}, rep.Stranded)

	// From the sink corner nothing else is reachable.
	g, err := builder.BuildGraph(builder.Square())
	require.NoError(t, err)
	reg, err := building.NewRegistry(g, []building.Entry{
		{Name: "D", Node: 3},
		{Name: "A", Node: 0},
		{Name: "B", Node: 1},
		{Name: "C", Node: 2},
	})
	require.NoError(t, err)
	nav, err := navigator.New(g, reg)
	require.NoError(t, err)
	rep, err = nav.Diagnose(ctx())
	require.NoError(t, err)
	assert.Equal(t, "D", rep.Origin)
	assert.Equal(t, 1, rep.ReachableNodes)
	assert.Equal(t, []string{"A", "B", "C"}, rep.Unreachable)
	assert.Equal(t, []string{"A", "B", "C"}, rep.Stranded)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want navigator.Outcome
	}{
		{nil, navigator.OutcomeOK},
		{fmt.Errorf("x: %w", core.ErrInvalidNode), navigator.OutcomeInvalid},
		{multistop.ErrTooManyStops, navigator.OutcomeInvalid},
		{&route.SegmentError{}, navigator.OutcomeUnreachable},
		{context.Canceled, navigator.OutcomeCanceled},
		{errors.New("boom"), navigator.OutcomeInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, navigator.Classify(tc.err), "%v", tc.err)
	}
}

func TestFailure(t *testing.T) {
	res := navigator.Failure(navigator.ErrNoRouteFound)
	assert.Equal(t, navigator.StatusError, res.Status)
	assert.Equal(t, navigator.ErrNoRouteFound.Error(), res.Message)
}

func TestDiagnose_TwoWayGrid(t *testing.T) {
	g, err := builder.BuildGraph(builder.Grid(3, 3))
	require.NoError(t, err)
	reg, err := building.NewRegistry(g, []building.Entry{{Name: "North", Node: 8}, {Name: "South", Node: 0}})
	require.NoError(t, err)
	nav, err := navigator.New(g, reg)
	require.NoError(t, err)

	rep, err := nav.Diagnose(ctx())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Components)
	assert.Equal(t, 9, rep.LargestComponent)
	assert.Empty(t, rep.Stranded)
	assert.Equal(t, 9, rep.ReachableNodes)
}
