package handlers

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type CreateNewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (PositionDTO, error) {
	var dto PositionDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

var moveOps = map[string]commands.Op{
	"open":  commands.Open,
	"flag":  commands.Flag,
	"chord": commands.Chord,
}

func ParseGameMove(move string) (commands.Op, error) {
	op, ok := moveOps[move]
	if !ok {
		return "", fmt.Errorf("unknown move %q, want open, flag or chord", move)
	}
	return op, nil
}

type GameSessionDTO struct {
	GameSessionId string         `json:"game_id"`
	Token         string         `json:"token,omitempty"`
	Grid          mines.GridInfo `json:"grid"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	MineCount     int            `json:"mine_count"`
	Phase         string         `json:"phase"`
	RevealedCount int            `json:"revealed_count"`
	FlaggedCount  int            `json:"flagged_count"`
	GameOver      bool           `json:"game_over"`
	Won           bool           `json:"won"`
	StartedAt     int64          `json:"started_at"`
	EndedAt       *int64         `json:"ended_at,omitempty"`
}

// newBoardDTO must be called while holding the session lock.
func newBoardDTO(b *mines.Board) *GameSessionDTO {
	return &GameSessionDTO{
		Grid:          b.Status(),
		Width:         b.Cols(),
		Height:        b.Rows(),
		MineCount:     b.MineCount(),
		Phase:         b.Phase().String(),
		RevealedCount: b.RevealedCount(),
		FlaggedCount:  b.FlaggedCount(),
		GameOver:      b.GameOver(),
		Won:           b.Won(),
	}
}

func (dto *GameSessionDTO) stamp(s *session.Session) *GameSessionDTO {
	dto.GameSessionId = s.ID.String()
	dto.StartedAt = s.StartedAt.UnixMilli()
	if endedAt := s.EndedAt(); endedAt != nil {
		e := endedAt.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}

// snapshot runs fn on the session board and returns the resulting state.
func snapshot(s *session.Session, fn func(b *mines.Board) error) (*GameSessionDTO, error) {
	var (
		dto *GameSessionDTO
		err error
	)
	s.Do(func(b *mines.Board) {
		if fn != nil {
			err = fn(b)
		}
		dto = newBoardDTO(b)
	})
	return dto.stamp(s), err
}
