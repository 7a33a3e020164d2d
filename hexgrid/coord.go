package hexgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int { return -h.Q - h.R }

// Add returns the component-wise sum h + o.
func (h HexCoord) Add(o HexCoord) HexCoord { return HexCoord{Q: h.Q + o.Q, R: h.R + o.R} }

// Scale returns h multiplied by k.
func (h HexCoord) Scale(k int) HexCoord { return HexCoord{Q: h.Q * k, R: h.R * k} }

// Neighbor returns the adjacent coordinate in direction dir (0..5, wrapping).
func (h HexCoord) Neighbor(dir int) HexCoord {
	return h.Add(Directions[((dir%6)+6)%6])
}

// Neighbors returns the six adjacent coordinates in Directions order.
func (h HexCoord) Neighbors() [6]HexCoord {
	var out [6]HexCoord
	for i, d := range Directions {
		out[i] = h.Add(d)
	}
	return out
}

// String formats h as "(q,r)".
func (h HexCoord) String() string { return fmt.Sprintf("(%d,%d)", h.Q, h.R) }

// MarshalText implements encoding.TextMarshaler using the "q,r" form.
func (h HexCoord) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; see ParseHexCoord.
func (h *HexCoord) UnmarshalText(text []byte) error {
	c, err := ParseHexCoord(string(text))
	if err != nil {
		return err
	}
	*h = c
	return nil
}

// ParseHexCoord parses "q,r", optionally wrapped in parentheses
// and with spaces around either number.
func ParseHexCoord(s string) (HexCoord, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimSuffix(strings.TrimPrefix(body, "("), ")")
	qs, rs, ok := strings.Cut(body, ",")
	if !ok {
		return HexCoord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return HexCoord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return HexCoord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	return HexCoord{Q: q, R: r}, nil
}

// Distance returns the number of hex steps between a and b:
// the max of the absolute cube-coordinate differences.
func Distance(a, b HexCoord) int {
	return max(abs(a.Q-b.Q), abs(a.R-b.R), abs(a.S()-b.S()))
}

// Ring returns the cells exactly radius steps from center, walking
// counter-clockwise from the south-west corner. Radius 0 yields [center].
func Ring(center HexCoord, radius int) ([]HexCoord, error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	if radius == 0 {
		return []HexCoord{center}, nil
	}
	out := make([]HexCoord, 0, 6*radius)
	h := center.Add(Directions[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			out = append(out, h)
			h = h.Neighbor(side)
		}
	}
	return out, nil
}

// Disc returns every cell within radius steps of center in spiral order:
// center first, then ring 1, ring 2, and so on. It holds 3r(r+1)+1 cells.
func Disc(center HexCoord, radius int) ([]HexCoord, error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	out := make([]HexCoord, 0, 3*radius*(radius+1)+1)
	for k := 0; k <= radius; k++ {
		ring, _ := Ring(center, k)
		out = append(out, ring...)
	}
	return out, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
