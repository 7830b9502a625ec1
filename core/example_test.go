package core_test

import (
	"fmt"

	"github.com/katalvlaran/buzznav/core"
)

// ExampleNewGraph builds a three-node one-way street and seals it.
func ExampleNewGraph() {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 120.5)
	_ = g.AddEdge(1, 2, 80)
	_ = core.AttachCoordinates(g, core.CoordSlice{
		{Lat: 33.7760, Lon: -84.3970},
		{Lat: 33.7770, Lon: -84.3970},
		{Lat: 33.7777, Lon: -84.3970},
	})
	g.Seal()

	fmt.Println(g.NodeCount(), g.EdgeCount(), g.PathWeight([]int{0, 1, 2}))
	// Output: 3 2 200.5
}
