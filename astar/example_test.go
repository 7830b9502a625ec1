package astar_test

import (
	"fmt"

	"github.com/katalvlaran/buzznav/astar"
	"github.com/katalvlaran/buzznav/builder"
)

// ExampleShortestPath routes around the one-way square.
func ExampleShortestPath() {
	g, _ := builder.BuildGraph(builder.Square())

	res, _ := astar.ShortestPath(g, 0, 3)
	fmt.Println(res.Distance, res.Path)

	back, _ := astar.ShortestPath(g, 3, 0)
	fmt.Println(back.Reachable(), back.Distance)
	// Output:
	// 300 [0 1 2 3]
	// false +Inf
}
