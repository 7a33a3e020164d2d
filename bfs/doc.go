// Package bfs provides breadth-first search over any graph that can
// enumerate the neighbors of a vertex, returning unweighted shortest-path
// depths, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook, called when a vertex is visited; a non-nil error aborts the walk.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Graph contract
//
//	A Graph only needs Neighbors(v) []V. If the graph also implements
//	Has(v) bool, BFS validates the start vertex and returns
//	ErrStartVertexNotFound for an unknown one.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns them, so the visit
//	sequence is reproducible whenever Neighbors is.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, visited set, result maps)
package bfs
