package mines

import (
	"fmt"
	"strings"
)

// Size of the first-click safe zone: the clicked cell and its neighbours.
const safeZone = 9

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// Seed encodes the params as "width:height:mines".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`%w: invalid seed (sseed = "%s", n = %d, err = %v)`,
			ErrInvalidParams, sseed, n, err,
		)
	}
	return p, nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Validate reports whether a board built from p can hold every requested
// mine outside any first-click safe zone. The engine itself never calls
// it; under-sized pools make placement drop mines instead.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive", ErrInvalidParams)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("%w: mine count must not be negative", ErrInvalidParams)
	}
	if limit := p.Width*p.Height - safeZone; p.MineCount > limit {
		return fmt.Errorf(
			"%w: at most %d mines fit a %dx%d board",
			ErrInvalidParams, max(limit, 0), p.Width, p.Height,
		)
	}
	return nil
}
