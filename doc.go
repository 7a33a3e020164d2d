// Package hexpath is a toolkit for path finding on hexagonal boards:
// coordinates and terrain, a tunable best-first path finder, and the exact
// searches used to check it.
//
// What is inside?
//
//	• hexgrid:    axial coordinates, hex distance, rings and spirals, boards
//	              with terrain, flood-fill regions, YAML board files
//	• pathfinder: weighted best-first search (A* at its defaults) with a
//	              terrain cost modifier, heuristic weight and iteration cap
//	• dijkstra:   exact single-source shortest paths over any neighbor graph
//	• bfs:        breadth-first traversal with depth limits and hooks
//
// The searches are generic over the cell type. Any grid that can list the
// neighbors of a cell and measure the step distance between two cells can
// be searched; *hexgrid.Board is the ready-made one.
//
// Quick example:
//
//	board, _ := hexgrid.NewHexagon(8)
//	cost := board.CostFunc(hexgrid.DefaultTerrainCosts())
//	pf := pathfinder.NewShortest[hexgrid.HexCoord](board, cost)
//	path, found := pf.FindPath(hexgrid.HexCoord{Q: -8}, hexgrid.HexCoord{Q: 8})
//
// The pathdemo command (cmd/pathdemo) runs a tuned search and the shortest
// search side by side on a board file or a generated hexagon and prints
// both path costs and the iteration count.
//
//	go run ./cmd/pathdemo -board board.yaml -start -3,0 -end 3,0 -heuristic-weight 0.5
package hexpath
