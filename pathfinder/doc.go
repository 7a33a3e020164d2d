// Package pathfinder provides a configurable best-first path search over
// any grid that can enumerate neighbors and measure step distance between
// cells. It is tuned for hexagonal boards but only relies on the Grid
// contract.
//
// Overview:
//
//   - FindPath expands cells in order of f = g + w·h, where g is the blended
//     cost from the start and h is Grid.Distance to the goal.
//   - With the default options (full cost, w = 1) it is plain A* and returns a
//     minimum-cost path whenever Distance never overestimates real step counts
//     and every passable move costs at least 1.
//   - With w = 0 it degenerates to uniform-cost search (Dijkstra).
//   - Equal f values pop the most recently queued cell first.
//
// Tuning knobs:
//
//   - WithHexCostModifier(m): blends each move cost toward one uniform step,
//     w = m·cost + (1-m). m = 1 uses the raw cost, m = 0 minimizes step count.
//     Impassable moves (+Inf or NaN) stay impassable at every m.
//   - WithHeuristicWeight(w): scales the heuristic. Lower values search more
//     cells and favor optimality; w ≤ 1 keeps the heuristic admissible.
//   - WithMaxIterations(n): caps expansions for a bounded-time answer.
//
// Results:
//
//	FindPath never fails. It returns (path, true) when the goal is reached,
//	otherwise the path to the most recently expanded cell and false: either
//	the goal is unreachable or the iteration cap ran out. Visited and
//	Iterations describe the last call; PathCost totals any path under a
//	cost function.
//
// Complexity (V = cells reached, E = moves considered):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), under the “lazy decrease-key” strategy.
//
// Thread safety:
//
//	A PathFinder carries the state of its last run and must not be shared
//	across goroutines. Independent PathFinders over a read-only grid may run
//	in parallel.
package pathfinder
