package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ExampleGraph_Neighbors shows how walls prune the 4-neighborhood.
//
//	. # .
//	. . .
//	. . .
func ExampleGraph_Neighbors() {
	g, _ := gridgraph.New(3, 3)
	_ = g.SetWall(gridgraph.Coord{X: 1, Y: 0}, true)

	for _, n := range g.Neighbors(gridgraph.Coord{X: 1, Y: 1}) {
		fmt.Print(n.Coord, " ")
	}
	fmt.Println()
	// Output:
	// (2,1) (0,1) (1,2)
}

// ExampleGraph_BreachWalls finds the cheapest set of walls to remove when
// the goal is sealed off.
func ExampleGraph_BreachWalls() {
	g, _ := gridgraph.New(3, 1)
	_ = g.SetWall(gridgraph.Coord{X: 1, Y: 0}, true)

	route, walls, _ := g.BreachWalls(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 2, Y: 0})
	fmt.Println(walls, route)
	// Output:
	// 1 [(0,0) (1,0) (2,0)]
}
