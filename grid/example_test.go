package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGrid_Neighbors lists the walkable cells around the centre of a
// 3×3 grid with a wall on its top-right corner.
func ExampleGrid_Neighbors() {
	g, _ := grid.New([][]float64{
		{1, 1, grid.Blocked},
		{1, 4, 1},
		{1, 1, 1},
	})

	ns, _ := g.Neighbors(grid.Coordinate{X: 1, Y: 1})
	fmt.Println(ns)
	// Output:
	// [(0, 0) (1, 0) (0, 1) (2, 1) (0, 2) (1, 2) (2, 2)]
}

// ExampleGrid_Regions counts the walkable areas separated by a wall column.
func ExampleGrid_Regions() {
	g, _ := grid.New([][]float64{
		{1, grid.Blocked, 2},
		{1, grid.Blocked, 2},
		{1, grid.Blocked, 2},
	})

	for i, r := range g.Regions() {
		fmt.Printf("region %d: %v\n", i, r)
	}
	// Output:
	// region 0: [(0, 0) (0, 1) (0, 2)]
	// region 1: [(2, 0) (2, 1) (2, 2)]
}
