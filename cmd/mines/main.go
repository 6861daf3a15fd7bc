// Command mines plays a game in the terminal. Commands are read from stdin
// one per line, using the same syntax as the websocket endpoint.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	width   int
	height  int
	mineCnt int
	seed    uint64
	verbose bool
)

func init() {
	flag.IntVar(&width, "width", 9, "board width")
	flag.IntVar(&height, "height", 9, "board height")
	flag.IntVar(&mineCnt, "mines", 10, "number of mines")
	flag.Uint64Var(&seed, "seed", 0, "random seed, 0 picks one")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func status(b *mines.Board) string {
	switch {
	case b.Won():
		return "you win"
	case b.GameOver():
		return "game over"
	}
	return fmt.Sprintf(
		"%d/%d revealed, %d flagged, %d mines",
		b.RevealedCount(), b.Cols()*b.Rows()-b.MineCount(), b.FlaggedCount(), b.MineCount(),
	)
}

func play(in io.Reader, out io.Writer, b *mines.Board) error {
	fmt.Fprintf(out, "%s%s\n", b, status(b))

	scanner := bufio.NewScanner(in)
	for !b.Terminal() && scanner.Scan() {
		cmd, err := commands.Parse(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := cmd.Apply(b); err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintf(out, "%s%s\n", b, status(b))
	}
	return scanner.Err()
}

func main() {
	flag.Parse()

	if verbose {
		mines.Log.SetLevel(logrus.DebugLevel)
	}

	params := mines.GameParams{Width: width, Height: height, MineCount: mineCnt}
	if err := params.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var rnd *rand.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewPCG(seed, seed))
	}

	if err := play(os.Stdin, os.Stdout, mines.NewBoard(params, rnd)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
