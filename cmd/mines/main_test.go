package main

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestPlay(t *testing.T) {
	b := mines.NewBoard(
		mines.GameParams{Width: 9, Height: 9, MineCount: 10},
		rand.New(rand.NewPCG(1, 1)),
	)
	in := strings.NewReader("f 8 8\nzap\no 9 9\nr\no 0 0\n")
	var out strings.Builder

	require.NoError(t, play(in, &out, b))

	s := out.String()
	assert.Contains(t, s, "0/71 revealed, 1 flagged, 10 mines")
	assert.Contains(t, s, `unknown command "zap"`)
	assert.Contains(t, s, "invalid cell coordinates")
	assert.True(t, strings.HasSuffix(s, "game over\n"))
	assert.False(t, b.MinesPlaced())
}

func TestStatus(t *testing.T) {
	b := mines.NewBoard(mines.GameParams{Width: 3, Height: 3, MineCount: 0}, nil)
	assert.Equal(t, "0/9 revealed, 0 flagged, 0 mines", status(b))
	b.Reveal(1, 1)
	assert.Equal(t, "you win", status(b))
}
