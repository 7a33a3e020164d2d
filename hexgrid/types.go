// Package hexgrid defines core types and sentinel errors
// for the hexgrid subpackage of github.com/katalvlaran/hexpath.
package hexgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for hexgrid operations.
var (
	// ErrNegativeRadius indicates a hexagon or ring was requested with radius < 0.
	ErrNegativeRadius = errors.New("hexgrid: radius must be non-negative")
	// ErrEmptyBoard indicates a board would hold no cells.
	ErrEmptyBoard = errors.New("hexgrid: board must have at least one cell")
	// ErrOutOfBoard indicates a coordinate that is not a cell of the board.
	ErrOutOfBoard = errors.New("hexgrid: coordinate is not on the board")
	// ErrBadCoord indicates a malformed "q,r" coordinate text.
	ErrBadCoord = errors.New("hexgrid: malformed coordinate")
	// ErrBadTerrain indicates an unknown terrain value or name.
	ErrBadTerrain = errors.New("hexgrid: unknown terrain")
)

// HexCoord is an axial hex-grid coordinate. The third cube coordinate
// S is derived: S = -Q - R. HexCoord is comparable and used as a map key.
type HexCoord struct {
	Q int
	R int
}

// Directions holds the six neighbor offsets in axial coordinates,
// counter-clockwise starting east.
var Directions = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Terrain is the kind of a board cell. The zero value is Plain.
type Terrain uint8

const (
	// Plain cells cost the base step cost.
	Plain Terrain = iota
	// Blue cells are moderately expensive.
	Blue
	// Red cells are expensive.
	Red
	// Wall cells cannot be entered.
	Wall
)

var terrainNames = [...]string{
	Plain: "plain",
	Blue:  "blue",
	Red:   "red",
	Wall:  "wall",
}

// Valid reports whether t is one of the declared terrains.
func (t Terrain) Valid() bool { return int(t) < len(terrainNames) }

// String returns the lower-case terrain name.
func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
	return terrainNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Terrain) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadTerrain, uint8(t))
	}
	return []byte(terrainNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Terrain) UnmarshalText(text []byte) error {
	for i, name := range terrainNames {
		if string(text) == name {
			*t = Terrain(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrBadTerrain, text)
}

// Passable is the default passability predicate: everything but Wall.
func Passable(t Terrain) bool { return t != Wall }
