package pathfinder

import (
	"container/heap"
	"math"
	"slices"
)

// PathFinder searches a Grid for a cost-minimizing path between two cells.
//
// A PathFinder is configured once and may run any number of sequential
// FindPath calls; Visited and Iterations always describe the last one.
// It must not be shared between goroutines while a call is in progress.
// Independent PathFinders may run concurrently.
type PathFinder[C comparable] struct {
	grid Grid[C]
	cost CostFunc[C]
	opts Options

	visited    []C
	iterations int
}

// New returns a PathFinder over grid using cost, tuned by opts.
// grid and cost must be non-nil.
func New[C comparable](grid Grid[C], cost CostFunc[C], opts ...Option) *PathFinder[C] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &PathFinder[C]{grid: grid, cost: cost, opts: o}
}

// NewShortest returns a PathFinder with DefaultOptions: plain A* weighted
// by the full cost function and no practical iteration cap.
func NewShortest[C comparable](grid Grid[C], cost CostFunc[C]) *PathFinder[C] {
	return New(grid, cost)
}

// Options returns the configuration in effect.
func (pf *PathFinder[C]) Options() Options { return pf.opts }

// Visited returns the cells expanded by the last FindPath, in expansion
// order and without duplicates. The end cell of a successful search is not
// included: it is reached, not expanded.
func (pf *PathFinder[C]) Visited() []C { return slices.Clone(pf.visited) }

// Iterations returns the number of expansions performed by the last FindPath.
func (pf *PathFinder[C]) Iterations() int { return pf.iterations }

// FindPath searches from start toward end.
//
// It returns the path start → end inclusive and true when end is reached.
// When the frontier empties (end unreachable) or MaxIterations expansions
// have run, it returns the path from start to the most recently expanded
// cell and false. The returned path is never empty; for start == end it is
// [start] and no expansion happens.
func (pf *PathFinder[C]) FindPath(start, end C) ([]C, bool) {
	s := &search[C]{
		pf:       pf,
		end:      end,
		gScore:   map[C]float64{start: 0},
		cameFrom: make(map[C]C),
		expanded: make(map[C]bool),
	}
	path, found := s.run(start)
	pf.visited = s.visited
	pf.iterations = s.iterations

	return path, found
}

// PathCost sums cost over consecutive cells of path. It is the caller-side
// total the finder itself does not report.
func PathCost[C comparable](path []C, cost CostFunc[C]) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += cost(path[i-1], path[i])
	}
	return total
}

// search holds the mutable state of a single FindPath call.
type search[C comparable] struct {
	pf         *PathFinder[C]
	end        C
	open       openSet[C]
	gScore     map[C]float64 // best known cost from start
	cameFrom   map[C]C
	expanded   map[C]bool
	visited    []C
	iterations int
	seq        uint64
}

func (s *search[C]) run(start C) ([]C, bool) {
	heap.Init(&s.open)
	s.push(start, 0)
	last := start

	for s.open.Len() > 0 {
		n := heap.Pop(&s.open).(*searchNode[C])
		// Stale entry: a cheaper route to this cell was queued later.
		if n.g > s.gScore[n.coord] {
			continue
		}
		if n.coord == s.end {
			return s.pathTo(n.coord), true
		}
		if s.iterations >= s.pf.opts.MaxIterations {
			break
		}

		s.iterations++
		if !s.expanded[n.coord] {
			s.expanded[n.coord] = true
			s.visited = append(s.visited, n.coord)
		}
		last = n.coord
		s.relax(n)
	}

	return s.pathTo(last), false
}

// relax pushes every neighbor of n whose best known cost improves.
func (s *search[C]) relax(n *searchNode[C]) {
	for _, nb := range s.pf.grid.Neighbors(n.coord) {
		w := s.pf.opts.stepCost(s.pf.cost(n.coord, nb))
		if math.IsInf(w, 1) {
			continue
		}
		g := n.g + w
		if old, seen := s.gScore[nb]; seen && g >= old {
			continue
		}
		s.gScore[nb] = g
		s.cameFrom[nb] = n.coord
		s.push(nb, g)
	}
}

func (s *search[C]) push(c C, g float64) {
	h := float64(s.pf.grid.Distance(c, s.end))
	s.seq++
	heap.Push(&s.open, &searchNode[C]{
		coord: c,
		g:     g,
		f:     g + s.pf.opts.HeuristicWeight*h,
		seq:   s.seq,
	})
}

// pathTo follows back-pointers from c to the start. The walk is bounded by
// the number of recorded back-pointers, so a cycle (only possible with
// negative costs) cannot hang it.
func (s *search[C]) pathTo(c C) []C {
	path := []C{c}
	for i := 0; i < len(s.cameFrom); i++ {
		prev, ok := s.cameFrom[c]
		if !ok {
			break
		}
		path = append(path, prev)
		c = prev
	}
	slices.Reverse(path)

	return path
}
