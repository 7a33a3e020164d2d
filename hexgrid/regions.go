package hexgrid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexpath/bfs"
)

var errReached = errors.New("hexgrid: target reached")

// Components finds all contiguous regions of passable cells.
// A nil passable uses Passable. Regions are listed in the order their
// first cell appears in Coords; cells within a region are in BFS order.
//
// Time:   O(N·6), Memory: O(N) for N cells.
func (b *Board) Components(passable func(Terrain) bool) [][]HexCoord {
	if passable == nil {
		passable = Passable
	}
	seen := make(map[HexCoord]bool, len(b.cells))
	var comps [][]HexCoord
	for _, c := range b.order {
		if seen[c] || !passable(b.cells[c]) {
			continue
		}
		// c is on the board and no hook can fail, so BFS cannot error.
		res, _ := bfs.BFS[HexCoord](b, c, b.passableFilter(passable))
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}
	return comps
}

// Connected reports whether a path of passable cells joins from and to.
// Both endpoints must be on the board and passable.
func (b *Board) Connected(from, to HexCoord, passable func(Terrain) bool) bool {
	if passable == nil {
		passable = Passable
	}
	tf, okFrom := b.cells[from]
	tt, okTo := b.cells[to]
	if !okFrom || !okTo || !passable(tf) || !passable(tt) {
		return false
	}
	_, err := bfs.BFS[HexCoord](b, from,
		b.passableFilter(passable),
		bfs.WithOnVisit(func(v HexCoord, _ int) error {
			if v == to {
				return errReached
			}
			return nil
		}),
	)
	return errors.Is(err, errReached)
}

// Within returns the cells reachable from center in at most steps moves
// through passable cells, nearest first. The center is always included.
func (b *Board) Within(center HexCoord, steps int, passable func(Terrain) bool) ([]HexCoord, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: steps=%d", ErrNegativeRadius, steps)
	}
	if !b.Has(center) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBoard, center)
	}
	if steps == 0 {
		return []HexCoord{center}, nil
	}
	if passable == nil {
		passable = Passable
	}
	res, err := bfs.BFS[HexCoord](b, center,
		b.passableFilter(passable),
		bfs.WithMaxDepth[HexCoord](steps),
	)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}

func (b *Board) passableFilter(passable func(Terrain) bool) bfs.Option[HexCoord] {
	return bfs.WithFilterNeighbor(func(_, nbr HexCoord) bool {
		return passable(b.cells[nbr])
	})
}
