package pathfinder

// searchNode is a frontier entry. Entries are never updated in place: an
// improved route pushes a new entry and the old one is skipped when popped.
type searchNode[C comparable] struct {
	coord C
	g     float64 // cost from start
	f     float64 // g + weight·heuristic
	seq   uint64  // insertion order
}

// openSet is a min-heap on f. Equal f pops the most recently pushed entry
// first, which keeps the search moving along its newest front.
type openSet[C comparable] []*searchNode[C]

func (q openSet[C]) Len() int { return len(q) }

func (q openSet[C]) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq > q[j].seq
}

func (q openSet[C]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openSet[C]) Push(x any) { *q = append(*q, x.(*searchNode[C])) }

func (q *openSet[C]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
