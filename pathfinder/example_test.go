// Package pathfinder_test provides examples of searching hex boards.
package pathfinder_test

import (
	"fmt"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/pathfinder"
)

// ExampleNewShortest walks across an open board along its middle row.
func ExampleNewShortest() {
	board, _ := hexgrid.NewHexagon(2)
	cost := board.CostFunc(hexgrid.DefaultTerrainCosts())

	pf := pathfinder.NewShortest[hexgrid.HexCoord](board, cost)
	path, found := pf.FindPath(hexgrid.HexCoord{Q: -2}, hexgrid.HexCoord{Q: 2})

	fmt.Println(found, path)
	fmt.Println("cost:", pathfinder.PathCost[hexgrid.HexCoord](path, cost))
	// Output:
	// true [(-2,0) (-1,0) (0,0) (1,0) (2,0)]
	// cost: 4
}

// ExampleWithHexCostModifier contrasts the cheapest route around a red
// cell with the fewest-steps route through it.
func ExampleWithHexCostModifier() {
	board, _ := hexgrid.NewHexagon(2)
	_ = board.SetTerrain(hexgrid.HexCoord{}, hexgrid.Red)
	cost := board.CostFunc(hexgrid.DefaultTerrainCosts())
	from, to := hexgrid.HexCoord{Q: -2}, hexgrid.HexCoord{Q: 2}

	for _, m := range []float64{1, 0} {
		pf := pathfinder.New[hexgrid.HexCoord](board, cost, pathfinder.WithHexCostModifier(m))
		path, _ := pf.FindPath(from, to)
		fmt.Printf("m=%v steps=%d cost=%v\n", m, len(path)-1, pathfinder.PathCost[hexgrid.HexCoord](path, cost))
	}
	// Output:
	// m=1 steps=5 cost=5
	// m=0 steps=4 cost=7
}

// ExamplePathFinder_FindPath_unreachable shows the partial answer when a
// wall seals the goal off.
func ExamplePathFinder_FindPath_unreachable() {
	board, _ := hexgrid.NewHexagon(1)
	goal := hexgrid.HexCoord{Q: 1}
	for _, c := range goal.Neighbors() {
		_ = board.SetTerrain(c, hexgrid.Wall)
	}

	pf := pathfinder.NewShortest[hexgrid.HexCoord](board, board.CostFunc(hexgrid.DefaultTerrainCosts()))
	path, found := pf.FindPath(hexgrid.HexCoord{Q: -1, R: 1}, goal)
	fmt.Println(found, len(path) > 0, pf.Iterations())
	// Output:
	// false true 3
}
