package building_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/buzznav/builder"
	"github.com/katalvlaran/buzznav/building"
	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(builder.Grid(5, 5))
	require.NoError(t, err)
	return g
}

func campus(t *testing.T) *building.Registry {
	t.Helper()
	r, err := building.NewRegistry(grid(t), []building.Entry{
		{Name: "Klaus Advanced Computing Building", Node: 0},
		{Name: "Student Center", Node: 12},
		{Name: "klaus annex", Node: 4},
		{Name: "Clough Commons", Node: 24},
		{Name: "Student Center", Node: 3}, // repeated name, still marks node 3
		{Name: "CULC", Node: 24},          // second name on node 24
	})
	require.NoError(t, err)
	return r
}

func TestLookup(t *testing.T) {
	r := campus(t)
	require.Equal(t, 5, r.Len())

	node, err := r.Lookup("Student Center")
	require.NoError(t, err)
	assert.Equal(t, 12, node, "first entry wins")

	_, err = r.Lookup("student center")
	require.ErrorIs(t, err, building.ErrBuildingNotFound)
	assert.Contains(t, err.Error(), `"student center"`)

	b, ok := r.Get("CULC")
	require.True(t, ok)
	assert.Equal(t, 24, b.Node)
	_, ok = r.Get("Nowhere")
	assert.False(t, ok)
}

func TestNameAt(t *testing.T) {
	r := campus(t)

	name, ok := r.NameAt(24)
	require.True(t, ok)
	assert.Equal(t, "Clough Commons", name)

	name, ok = r.NameAt(3)
	require.True(t, ok, "a repeated name still marks its own node")
	assert.Equal(t, "Student Center", name)

	_, ok = r.NameAt(7)
	assert.False(t, ok)
}

func TestNearest_RepeatedNameKeepsSecondSite(t *testing.T) {
	g := grid(t)
	r := campus(t)

	b, d, ok := r.Nearest(g.Coord(3))
	require.True(t, ok)
	assert.Equal(t, "Student Center", b.Name)
	assert.Equal(t, 3, b.Node)
	assert.Zero(t, d)

	node, err := r.Lookup("Student Center")
	require.NoError(t, err)
	assert.Equal(t, 12, node)
}

func TestNewRegistry_Validation(t *testing.T) {
	g := grid(t)

	_, err := building.NewRegistry(nil, nil)
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = building.NewRegistry(g, []building.Entry{{Name: "", Node: 1}})
	require.ErrorIs(t, err, building.ErrEmptyName)

	_, err = building.NewRegistry(g, []building.Entry{{Name: "Far", Node: 25}})
	require.ErrorIs(t, err, core.ErrInvalidNode)

	empty, err := building.NewRegistry(g, nil)
	require.NoError(t, err)
	_, _, ok := empty.Nearest(g.Coord(0))
	assert.False(t, ok)
	assert.Empty(t, empty.Names())
}

func TestNearest_NoCoordinates(t *testing.T) {
	g := core.NewGraph(2)
	r, err := building.NewRegistry(g, []building.Entry{{Name: "A", Node: 1}})
	require.NoError(t, err)

	_, d, ok := r.Nearest(core.Coord{})
	assert.False(t, ok)
	assert.True(t, math.IsInf(d, 1))
}

func TestNearest(t *testing.T) {
	g := grid(t)
	r := campus(t)

	b, d, ok := r.Nearest(g.Coord(12))
	require.True(t, ok)
	assert.Equal(t, "Student Center", b.Name)
	assert.Zero(t, d)

	// Node 1 is 50 m east of node 0 and far from the rest.
	b, d, ok = r.Nearest(g.Coord(1))
	require.True(t, ok)
	assert.Equal(t, "Klaus Advanced Computing Building", b.Name)
	assert.InDelta(t, 50, d, 0.1)
}

// TestNearest_MatchesLinearScan checks the k-d tree against brute force.
func TestNearest_MatchesLinearScan(t *testing.T) {
	g, err := builder.BuildGraph(builder.RandomSparse(200, 0), builder.WithSeed(8))
	require.NoError(t, err)

	var entries []building.Entry
	for i := 0; i < g.NodeCount(); i += 3 {
		entries = append(entries, building.Entry{Name: fmt.Sprintf("B%03d", i), Node: i})
	}
	r, err := building.NewRegistry(g, entries)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	origin := g.Coord(0)
	for q := 0; q < 100; q++ {
		c := core.Coord{Lat: origin.Lat + (rng.Float64()-0.5)*0.02, Lon: origin.Lon + (rng.Float64()-0.5)*0.02}

		best := math.Inf(1)
		for _, e := range entries {
			if d := geo.Haversine(c, g.Coord(e.Node)); d < best {
				best = d
			}
		}
		_, d, ok := r.Nearest(c)
		require.True(t, ok)
		assert.InDelta(t, best, d, 1e-6)
	}
}

func TestNames_CaseInsensitiveOrder(t *testing.T) {
	r := campus(t)
	assert.Equal(t, []string{
		"Clough Commons",
		"CULC",
		"Klaus Advanced Computing Building",
		"klaus annex",
		"Student Center",
	}, r.Names())
}

func TestWithPrefix(t *testing.T) {
	r := campus(t)

	assert.Equal(t, []string{"Klaus Advanced Computing Building", "klaus annex"}, r.WithPrefix("KLAUS", 0))
	assert.Equal(t, []string{"Klaus Advanced Computing Building"}, r.WithPrefix("kla", 1))
	assert.Equal(t, []string{"Clough Commons", "CULC"}, r.WithPrefix("c", 10))
	assert.Empty(t, r.WithPrefix("zz", 0))
	assert.Len(t, r.WithPrefix("", 0), 5)
}

func TestBuildings_IsACopy(t *testing.T) {
	r := campus(t)
	bs := r.Buildings()
	require.Len(t, bs, 5)
	assert.Equal(t, "Klaus Advanced Computing Building", bs[0].Name)
	bs[0].Name = "changed"
	assert.Equal(t, "Klaus Advanced Computing Building", r.Buildings()[0].Name)
}
