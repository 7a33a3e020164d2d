// Package pathfinder defines the collaborator contracts and configuration
// options of the weighted best-first path finder.
package pathfinder

import "math"

// hexStepCost is the uniform per-step cost that HexCostModifier blends
// the terrain cost toward.
const hexStepCost = 1.0

// Grid is the coordinate system the search runs over.
//
// Neighbors enumerates the cells adjacent to c. Distance is the grid step
// distance between two cells and forms the heuristic; it must never exceed
// the number of steps of any real path between them.
type Grid[C comparable] interface {
	Neighbors(c C) []C
	Distance(a, b C) int
}

// CostFunc returns the cost of moving from one cell to another.
// Costs must be ≥ 0; +Inf (or NaN) marks the move as impassable. Cells the
// grid does not know should report +Inf rather than fail.
type CostFunc[C comparable] func(from, to C) float64

// Options tunes a PathFinder.
//
// HexCostModifier – in [0,1]; 1 weighs moves by the full cost function,
// 0 treats every passable move as one uniform step.
// HeuristicWeight – in [0,1]; scales the distance heuristic. 0 is
// uniform-cost search, 1 is plain A*.
// MaxIterations   – cap on node expansions; a negative cap behaves as 0.
//
// Values outside these ranges are not rejected; results are then unspecified.
type Options struct {
	HexCostModifier float64
	HeuristicWeight float64
	MaxIterations   int
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithHexCostModifier sets how strongly terrain cost dominates over the
// uniform step cost.
func WithHexCostModifier(m float64) Option {
	return func(o *Options) {
		o.HexCostModifier = m
	}
}

// WithHeuristicWeight sets the multiplier of the distance heuristic.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		o.HeuristicWeight = w
	}
}

// WithMaxIterations caps the number of node expansions per FindPath.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// DefaultOptions returns the shortest-path configuration:
// full terrain cost, full heuristic, no practical iteration cap.
func DefaultOptions() Options {
	return Options{
		HexCostModifier: 1,
		HeuristicWeight: 1,
		MaxIterations:   math.MaxInt,
	}
}

// stepCost blends a raw move cost toward the uniform step cost:
//
//	w = m·raw + (1-m)·1
//
// Impassable moves stay impassable at every m.
func (o Options) stepCost(raw float64) float64 {
	if math.IsInf(raw, 1) || math.IsNaN(raw) {
		return math.Inf(1)
	}
	m := o.HexCostModifier
	return m*raw + (1-m)*hexStepCost
}
