package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// NewRand returns a PCG generator with a random seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (b *Board) placeMines(safe Point) {
	/*
	 * Nothing may go on the first-clicked cell or next to it, so the
	 * first reveal always opens a zero.
	 */
	forbidden := mapset.New[Point]()
	forbidden.Put(safe)
	for _, p := range b.Neighbors(safe.Col, safe.Row) {
		forbidden.Put(p)
	}

	pool := make([]Point, 0, len(b.cells))
	for _, c := range b.cells {
		p := Point{c.Col, c.Row}
		if !forbidden.Has(p) {
			pool = append(pool, p)
		}
	}

	b.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := max(min(b.numMines, len(pool)), 0)
	if n < b.numMines {
		Log.WithFields(logrus.Fields{
			"requested": b.numMines,
			"placed":    n,
			"board":     b.Params().Seed(),
			"safe":      safe.String(),
		}).Warn("candidate pool too small, placing fewer mines")
	}
	b.layMines(pool[:n])

	Log.WithFields(logrus.Fields{
		"board": b.Params().Seed(),
		"safe":  safe.String(),
		"mines": n,
	}).Debug("mines placed")
}

// layMines marks the given cells as mines, computes every adjacency count
// and closes the placement phase.
func (b *Board) layMines(mines []Point) {
	for _, p := range mines {
		b.state(p.Col, p.Row).Mine = true
	}

	for i := range b.cells {
		c := &b.cells[i]
		if c.State.Mine {
			continue
		}
		count := 0
		for _, p := range b.Neighbors(c.Col, c.Row) {
			if b.state(p.Col, p.Row).Mine {
				count++
			}
		}
		c.State.Adjacent = count
	}

	b.phase = Placed
}
