package hexgrid

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// boardFile is the YAML form of a board:
//
//	radius: 2            # optional: hexagon of plain cells around the origin
//	cells:               # optional: overrides and additional cells
//	  - at: "1,0"
//	    terrain: blue
type boardFile struct {
	Radius *int        `yaml:"radius,omitempty"`
	Cells  []cellEntry `yaml:"cells,omitempty"`
}

type cellEntry struct {
	At      HexCoord `yaml:"at"`
	Terrain Terrain  `yaml:"terrain"`
}

// LoadBoard decodes a YAML board. Unknown keys are rejected.
// Returns ErrEmptyBoard if the document defines no cells.
func LoadBoard(r io.Reader) (*Board, error) {
	var f boardFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBoard
		}
		return nil, fmt.Errorf("hexgrid: decode board: %w", err)
	}

	cells := make(map[HexCoord]Terrain)
	if f.Radius != nil {
		coords, err := Disc(HexCoord{}, *f.Radius)
		if err != nil {
			return nil, err
		}
		for _, c := range coords {
			cells[c] = Plain
		}
	}
	for _, e := range f.Cells {
		cells[e.At] = e.Terrain
	}
	return NewBoard(cells)
}

// WriteYAML encodes every cell of b in Coords order; LoadBoard reads it back.
func (b *Board) WriteYAML(w io.Writer) error {
	f := boardFile{Cells: make([]cellEntry, 0, len(b.order))}
	for _, c := range b.order {
		f.Cells = append(f.Cells, cellEntry{At: c, Terrain: b.cells[c]})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("hexgrid: encode board: %w", err)
	}
	return enc.Close()
}
