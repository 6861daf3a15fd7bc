package mines

// Reveal opens the cell at col,row. The first reveal places the mines
// around it. Opening a zero floods its connected region of zeroes and
// their numbered border. Invalid or redundant calls do nothing.
func (b *Board) Reveal(col, row int) {
	if !b.InBounds(col, row) || b.Terminal() {
		return
	}

	if b.phase == Unplaced {
		b.placeMines(Point{col, row})
	}

	s := b.state(col, row)
	if !s.Hidden() {
		return
	}

	if s.Mine {
		s.Visibility = Revealed
		b.gameOver = true
		b.exploded = b.Index(col, row)
		b.revealAllMines()
		return
	}

	stack := []Point{{col, row}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		curr := b.state(p.Col, p.Row)
		if !curr.Hidden() {
			continue
		}
		curr.Visibility = Revealed
		b.revealedCount++

		if curr.Adjacent == 0 {
			for _, n := range b.Neighbors(p.Col, p.Row) {
				if b.state(n.Col, n.Row).Hidden() {
					stack = append(stack, n)
				}
			}
		}
	}

	b.checkWin()
}

// checkWin must only run right after a flood fill raised revealedCount.
func (b *Board) checkWin() {
	if b.revealedCount != b.cols*b.rows-b.numMines || b.gameOver {
		return
	}
	b.win = true
	for i := range b.cells {
		s := &b.cells[i].State
		if !s.Mine && !s.Revealed() {
			s.Visibility = Revealed
			b.revealedCount++
		}
	}
}

func (b *Board) revealAllMines() {
	for i := range b.cells {
		if s := &b.cells[i].State; s.Mine {
			s.Visibility = Revealed
		}
	}
}

// ToggleFlag flips a hidden cell to flagged and back. Revealed cells
// cannot be flagged.
func (b *Board) ToggleFlag(col, row int) {
	if !b.InBounds(col, row) || b.Terminal() {
		return
	}
	s := b.state(col, row)
	switch s.Visibility {
	case Hidden:
		s.Visibility = Flagged
	case Flagged:
		s.Visibility = Hidden
	}
}

// HintReveal reveals a random safe hidden cell of a game in progress.
func (b *Board) HintReveal() {
	if b.phase == Unplaced || b.Terminal() {
		return
	}

	var safe []Point
	for _, c := range b.cells {
		if !c.State.Mine && c.State.Hidden() {
			safe = append(safe, Point{c.Col, c.Row})
		}
	}
	if len(safe) == 0 {
		return
	}

	p := safe[b.rnd.IntN(len(safe))]
	b.Reveal(p.Col, p.Row)
}

// Chord reveals every hidden neighbour of a revealed number once the
// player has flagged as many neighbours as the number says. A wrong
// flag makes this lose the game like any other reveal of a mine.
func (b *Board) Chord(col, row int) {
	if !b.InBounds(col, row) || b.Terminal() {
		return
	}
	s := b.state(col, row)
	if !s.Revealed() || s.Mine || s.Adjacent == 0 {
		return
	}

	neighbors := b.Neighbors(col, row)
	hidden := make([]Point, 0, len(neighbors))
	flagged := 0
	for _, n := range neighbors {
		switch b.state(n.Col, n.Row).Visibility {
		case Flagged:
			flagged++
		case Hidden:
			hidden = append(hidden, n)
		}
	}
	if flagged != s.Adjacent {
		return
	}

	for _, n := range hidden {
		b.Reveal(n.Col, n.Row)
		if b.Terminal() {
			return
		}
	}
}

// Forfeit ends a game in progress as lost and shows the mines.
func (b *Board) Forfeit() {
	if b.Terminal() {
		return
	}
	b.gameOver = true
	b.revealAllMines()
}
