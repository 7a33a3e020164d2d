// Package hexgrid models a hex-tiled board in axial coordinates and exposes
// it as a graph for path finding and region analysis.
//
// What:
//
//   - HexCoord: axial (Q, R) coordinate with derived cube S = -Q-R, neighbor
//     enumeration, hex distance, text form "q,r".
//   - Ring / Disc: cells at, or within, a given step radius.
//   - Board: a finite cell set with a Terrain per cell (Plain, Blue, Red, Wall).
//     It satisfies the neighbor/distance contracts of pathfinder, dijkstra and bfs.
//   - CostFunc: terrain-driven edge costs; off-board and Wall are +Inf.
//   - Components / Connected / Within: flood-fill region queries built on bfs.
//   - LoadBoard / WriteYAML: YAML board files.
//
// Why:
//
//   - Game maps: the path finder demo board, reachable-move highlighting,
//     detecting that a target is walled off before searching.
//
// Complexity:
//
//   - Neighbors, Distance, CostFunc lookups: O(1).
//   - Components: O(N·6) time, O(N) memory for N cells.
//   - Within / Connected: O(N·6) worst case.
//
// Errors:
//
//   - ErrNegativeRadius: radius or step count below zero.
//   - ErrEmptyBoard: a board would hold no cells.
//   - ErrOutOfBoard: the coordinate is not a cell of the board.
//   - ErrBadCoord: malformed "q,r" text.
//   - ErrBadTerrain: unknown terrain value or name.
package hexgrid
