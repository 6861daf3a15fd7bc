package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Phase tracks the one-shot mine placement.
type Phase uint8

const (
	Unplaced Phase = iota
	Placed
)

func (p Phase) String() string {
	if p == Placed {
		return "placed"
	}
	return "unplaced"
}

// Board is the grid and the rules. It is not safe for concurrent use;
// callers driving one board from several goroutines must serialize.
type Board struct {
	cols, rows    int
	numMines      int
	cells         []Cell
	phase         Phase
	revealedCount int
	gameOver, win bool
	exploded      int // index of the mine that ended the game, or -1
	rnd           *rand.Rand
}

// NewBoard allocates a board with no mines. Mines are placed on the first
// reveal. A nil r is replaced by [NewRand].
func NewBoard(params GameParams, r *rand.Rand) *Board {
	if r == nil {
		r = NewRand()
	}
	cols, rows, mines := params.Unpack()
	cols, rows = max(cols, 0), max(rows, 0)
	b := &Board{
		cols:     cols,
		rows:     rows,
		numMines: mines,
		cells:    make([]Cell, 0, cols*rows),
		exploded: -1,
		rnd:      r,
	}
	for row := range rows {
		for col := range cols {
			b.cells = append(b.cells, Cell{Col: col, Row: row})
		}
	}
	return b
}

func (b *Board) Index(col, row int) int {
	return row*b.cols + col
}

func (b *Board) InBounds(col, row int) bool {
	return 0 <= col && col < b.cols && 0 <= row && row < b.rows
}

func (b *Board) Neighbors(col, row int) []Point {
	points := make([]Point, 0, len(deltas))
	for _, d := range deltas {
		nc, nr := col+d.Col, row+d.Row
		if b.InBounds(nc, nr) {
			points = append(points, Point{nc, nr})
		}
	}
	return points
}

func (b *Board) state(col, row int) *CellState {
	return &b.cells[b.Index(col, row)].State
}

func (b *Board) Cols() int          { return b.cols }
func (b *Board) Rows() int          { return b.rows }
func (b *Board) MineCount() int     { return b.numMines }
func (b *Board) Phase() Phase       { return b.phase }
func (b *Board) MinesPlaced() bool  { return b.phase == Placed }
func (b *Board) RevealedCount() int { return b.revealedCount }
func (b *Board) GameOver() bool     { return b.gameOver }
func (b *Board) Won() bool          { return b.win }

// Terminal reports whether the game has been lost or won.
func (b *Board) Terminal() bool { return b.gameOver || b.win }

func (b *Board) Params() GameParams {
	return GameParams{Width: b.cols, Height: b.rows, MineCount: b.numMines}
}

func (b *Board) Cell(col, row int) (Cell, bool) {
	if !b.InBounds(col, row) {
		return Cell{}, false
	}
	return b.cells[b.Index(col, row)], true
}

// Cells returns a copy of every cell in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// PlacedMines counts the mines actually on the board, which is less than
// [Board.MineCount] before placement or when the candidate pool was short.
func (b *Board) PlacedMines() (count int) {
	for _, c := range b.cells {
		if c.State.Mine {
			count++
		}
	}
	return
}

func (b *Board) FlaggedCount() (count int) {
	for _, c := range b.cells {
		if c.State.Flagged() {
			count++
		}
	}
	return
}

func (b *Board) String() string {
	return b.Status().ToString(b.cols)
}
