// Package bfs provides breadth-first search over a Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   Graph[V]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
//
// On a hook error or cancellation the partial Result is still returned.
func BFS[V comparable](g Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex when the graph can tell us
	if m, ok := g.(membership[V]); ok && !m.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[V]bool),
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}

	// Seed queue with start vertex (no parent)
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker[V]) enqueue(v V, d int, parent V) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and filtering,
// and enqueues each unseen neighbor.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.v) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}
