// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm over any graph that can enumerate neighbors,
// with edge costs supplied by a cost function.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// When to use:
//
//   - As the exact reference for heuristic searches: pathfinder with a zero
//     heuristic weight must agree with it on every input.
//   - On boards and maps where every edge cost is known and non-negative.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: returns a predecessor map, so you can rebuild each path with PathTo.
//   - WithMaxDistance: aborts exploration beyond a specified distance, saving work on large or unbounded graphs.
//   - WithInfEdgeThreshold: treats any edge with cost ≥ threshold as impassable.
//     The default threshold is +Inf, so a cost function returning math.Inf(1)
//     marks a wall. NaN costs are treated as walls too.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        a nil Graph was passed.
//   - ErrNilCost:         a nil CostFunc was passed.
//   - ErrVertexNotFound:  the graph implements Has(v) bool and does not hold the source.
//   - ErrNegativeWeight:  the cost function returned a negative cost for an edge
//     reached during the search.
//   - ErrBadMaxDistance:  (via panic) WithMaxDistance received a negative value.
//   - ErrBadInfThreshold: (via panic) WithInfEdgeThreshold received zero or a negative value.
//   - ErrNoPath:          PathTo was asked for a vertex that was never reached.
//
// Thread safety:
//
//   - Each call owns its own heap and maps; concurrent calls are safe as long as
//     the graph and the cost function are safe for concurrent reads.
package dijkstra
