// Package dijkstra implements Dijkstra's shortest-path algorithm.
//
// Notes on implementation choices:
//
//   - Costs come from a CostFunc, so negative costs can only be detected
//     when an edge is relaxed; the search then fails with ErrNegativeWeight.
//   - We treat any edge with cost ≥ InfEdgeThreshold (or NaN) as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes shortest distances from source to every vertex reachable
// in g, where cost(u, v) is the cost of the edge u → v.
//
// Returns:
//
//   - dist: map from vertex to minimum distance. Vertices that were never
//     reached (or lie beyond MaxDistance) are absent.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The source has no entry.
//   - err:  error if inputs are invalid or if a negative cost is detected.
func Dijkstra[V comparable](g Graph[V], cost CostFunc[V], source V, opts ...Option) (map[V]float64, map[V]V, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cost == nil {
		return nil, nil, ErrNilCost
	}
	if m, ok := g.(membership[V]); ok && !m.Has(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// 3) Run
	r := &runner[V]{
		g:       g,
		cost:    cost,
		options: cfg,
		dist:    map[V]float64{source: 0},
		prev:    make(map[V]V),
		visited: make(map[V]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: source, dist: 0})
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the path source → … → dest from a predecessor map
// returned by Dijkstra with WithReturnPath.
// Returns ErrNoPath if dest was not reached.
func PathTo[V comparable](prev map[V]V, source, dest V) ([]V, error) {
	path := []V{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       Graph[V]
	cost    CostFunc[V]
	options Options
	dist    map[V]float64 // best known distance from source
	prev    map[V]V       // predecessor on the shortest path
	visited map[V]bool    // finalized vertices
	pq      nodePQ[V]
}

// process repeatedly extracts the vertex with the minimum distance from the
// source and relaxes its outgoing edges, until the heap is empty or the next
// distance exceeds MaxDistance.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V])
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge out of u and improves distances to its neighbors.
func (r *runner[V]) relax(u V) error {
	for _, v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		w := r.cost(u, v)
		if math.IsNaN(w) || w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal distances keep the first predecessor.
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem[V]{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[V comparable] struct {
	id   V
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ[V comparable] []*nodeItem[V]

func (pq nodePQ[V]) Len() int           { return len(pq) }
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
