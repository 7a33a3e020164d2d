// Package hexgrid provides axial hex coordinates and a bounded hex board
// whose cells carry a Terrain. A *Board is the coordinate system the path
// finder searches over: it enumerates in-board neighbors, measures hex
// distance, and produces a terrain cost function.
package hexgrid

import (
	"fmt"
	"math"
	"sort"
)

// Board is a finite set of hex cells with terrain.
// Reads are safe for concurrent use; SetTerrain is not.
type Board struct {
	cells map[HexCoord]Terrain
	order []HexCoord // sorted by (R, Q)
}

// NewHexagon builds a hexagon-shaped board of Plain cells centered on
// the origin. Radius 0 is a single cell; radius 2 holds 19 cells.
// Returns ErrNegativeRadius for radius < 0.
func NewHexagon(radius int) (*Board, error) {
	coords, err := Disc(HexCoord{}, radius)
	if err != nil {
		return nil, err
	}
	cells := make(map[HexCoord]Terrain, len(coords))
	for _, c := range coords {
		cells[c] = Plain
	}
	return newBoard(cells), nil
}

// NewBoard builds a board from an explicit cell set. The map is copied.
// Returns ErrEmptyBoard for an empty map and ErrBadTerrain for an
// undeclared terrain value.
func NewBoard(cells map[HexCoord]Terrain) (*Board, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyBoard
	}
	cp := make(map[HexCoord]Terrain, len(cells))
	for c, t := range cells {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %d at %v", ErrBadTerrain, uint8(t), c)
		}
		cp[c] = t
	}
	return newBoard(cp), nil
}

func newBoard(cells map[HexCoord]Terrain) *Board {
	order := make([]HexCoord, 0, len(cells))
	for c := range cells {
		order = append(order, c)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].R != order[j].R {
			return order[i].R < order[j].R
		}
		return order[i].Q < order[j].Q
	})
	return &Board{cells: cells, order: order}
}

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// Has reports whether c is a cell of the board.
func (b *Board) Has(c HexCoord) bool {
	_, ok := b.cells[c]
	return ok
}

// Terrain returns the terrain at c and whether c is on the board.
func (b *Board) Terrain(c HexCoord) (Terrain, bool) {
	t, ok := b.cells[c]
	return t, ok
}

// SetTerrain changes the terrain of an existing cell.
func (b *Board) SetTerrain(c HexCoord, t Terrain) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrBadTerrain, uint8(t))
	}
	if !b.Has(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBoard, c)
	}
	b.cells[c] = t
	return nil
}

// Coords returns all cells sorted by row (R) then column (Q).
// The returned slice is a copy.
func (b *Board) Coords() []HexCoord {
	out := make([]HexCoord, len(b.order))
	copy(out, b.order)
	return out
}

// Neighbors returns the on-board neighbors of c in Directions order.
// Terrain is not consulted; walls are neighbors with infinite cost.
func (b *Board) Neighbors(c HexCoord) []HexCoord {
	out := make([]HexCoord, 0, 6)
	for _, d := range Directions {
		if n := c.Add(d); b.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Distance returns the hex step distance between a and b.
func (b *Board) Distance(a, c HexCoord) int { return Distance(a, c) }

// TerrainCosts maps each enterable terrain to the cost of stepping onto it.
// Wall is always impassable.
type TerrainCosts struct {
	Plain float64
	Blue  float64
	Red   float64
}

// DefaultTerrainCosts returns plain 1, blue 2, red 4.
func DefaultTerrainCosts() TerrainCosts {
	return TerrainCosts{Plain: 1, Blue: 2, Red: 4}
}

// Of returns the cost of entering terrain t; +Inf for Wall.
func (tc TerrainCosts) Of(t Terrain) float64 {
	switch t {
	case Plain:
		return tc.Plain
	case Blue:
		return tc.Blue
	case Red:
		return tc.Red
	default:
		return math.Inf(1)
	}
}

// CostFunc returns the edge cost function of the board under tc:
// the cost of a move is the cost of the destination cell. Off-board
// destinations and walls cost +Inf, so the search never needs errors.
func (b *Board) CostFunc(tc TerrainCosts) func(from, to HexCoord) float64 {
	return func(_, to HexCoord) float64 {
		t, ok := b.cells[to]
		if !ok {
			return math.Inf(1)
		}
		return tc.Of(t)
	}
}
