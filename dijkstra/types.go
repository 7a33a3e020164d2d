// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilCost indicates that a nil CostFunc was passed to Dijkstra.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in a graph that reports its vertex set.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-cost edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the requested destination was never reached.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// Graph is the adjacency contract Dijkstra searches over.
type Graph[V comparable] interface {
	Neighbors(v V) []V
}

// membership is optionally implemented by graphs that know their vertex set.
type membership[V comparable] interface {
	Has(v V) bool
}

// CostFunc returns the cost of the edge from → to.
type CostFunc[V comparable] func(from, to V) float64

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with cost ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (only infinite costs are walls).
type Options struct {
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Cost threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// considered non-traversable.
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (only infinite costs are impassable).
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
