package mines

import "fmt"

type Visibility uint8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return fmt.Sprintf("Visibility(%d)", uint8(v))
	}
}

// CellState is the mutable part of a cell. A cell has exactly one
// visibility, so it can never be revealed and flagged at once.
type CellState struct {
	Mine       bool
	Visibility Visibility
	// Adjacent is the number of mined neighbours. Only meaningful for
	// non-mine cells once mines are placed.
	Adjacent int
}

func (s CellState) Revealed() bool { return s.Visibility == Revealed }

func (s CellState) Flagged() bool { return s.Visibility == Flagged }

func (s CellState) Hidden() bool { return s.Visibility == Hidden }

type Cell struct {
	Col, Row int
	State    CellState
}

type Point struct {
	Col, Row int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Col, p.Row)
}

// Moore neighbourhood, NW to SE.
var deltas = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
