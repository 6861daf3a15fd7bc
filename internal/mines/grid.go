package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellStatus is what a player is allowed to know about a cell.
type CellStatus int8

const (
	Unknown       CellStatus = -2
	Flag          CellStatus = -1
	CorrectFlag   CellStatus = 64 // post-game
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66
	UnflaggedMine CellStatus = 67
	// 0-8 for an open cell with that many mined neighbours
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "."
	case Flag, CorrectFlag:
		return "F"
	case ExplodedMine:
		return "X"
	case WrongFlag:
		return "x"
	case UnflaggedMine:
		return "*"
	case 0:
		return " "
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type GridInfo []CellStatus

func (g GridInfo) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// Status returns the player's view of the board. Mine positions stay
// hidden until the game is over.
func (b *Board) Status() GridInfo {
	grid := make(GridInfo, len(b.cells))
	done := b.Terminal()
	for i, c := range b.cells {
		s := c.State
		switch {
		case s.Flagged() && done && s.Mine:
			grid[i] = CorrectFlag
		case s.Flagged() && done:
			grid[i] = WrongFlag
		case s.Flagged():
			grid[i] = Flag
		case s.Hidden() && done && s.Mine:
			grid[i] = UnflaggedMine
		case s.Hidden():
			grid[i] = Unknown
		case s.Mine && i == b.exploded:
			grid[i] = ExplodedMine
		case s.Mine:
			grid[i] = UnflaggedMine
		default:
			grid[i] = CellStatus(s.Adjacent)
		}
	}
	return grid
}
