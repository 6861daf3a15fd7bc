// Package commands implements the line protocol hosts use to drive a
// board: one command per line, arguments separated by spaces.
//
//	g      no-op, fetch state
//	o x y  reveal
//	f x y  toggle flag
//	c x y  chord
//	h      hint
//	r      forfeit
package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type Op string

const (
	Noop    Op = "g"
	Open    Op = "o"
	Flag    Op = "f"
	Chord   Op = "c"
	Hint    Op = "h"
	Forfeit Op = "r"
)

// Maps known commands to number of arguments
var opNargs = map[Op]int{
	Noop:    0,
	Open:    2,
	Flag:    2,
	Chord:   2,
	Hint:    0,
	Forfeit: 0,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid arguments")
	ErrOutOfBounds    = errors.New("invalid cell coordinates")
)

type Command struct {
	Op   Op
	X, Y int
}

func (c Command) String() string {
	if opNargs[c.Op] == 2 {
		return fmt.Sprintf("%s %d %d", c.Op, c.X, c.Y)
	}
	return string(c.Op)
}

func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	op := Op(fields[0])
	nargs, ok := opNargs[op]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	if len(args) != nargs {
		return Command{}, fmt.Errorf(
			"%w: %s takes %d arguments, got %d", ErrInvalidArgs, op, nargs, len(args),
		)
	}
	cmd := Command{Op: op}
	if nargs == 2 {
		x, y, err := parseXY(args)
		if err != nil {
			return Command{}, err
		}
		cmd.X, cmd.Y = x, y
	}
	return cmd, nil
}

// ParseBatch parses a newline separated list of commands, skipping blank
// lines.
func ParseBatch(text string) ([]Command, error) {
	var cmds []Command
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func parseXY(args []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("%w: first argument must be an int", ErrInvalidArgs)
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("%w: second argument must be an int", ErrInvalidArgs)
		return
	}
	return
}

// Apply runs c against b. Coordinates outside the board are reported
// instead of being silently dropped by the engine.
func (c Command) Apply(b *mines.Board) error {
	if opNargs[c.Op] == 2 && !b.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %d:%d", ErrOutOfBounds, c.X, c.Y)
	}
	switch c.Op {
	case Noop:
	case Open:
		b.Reveal(c.X, c.Y)
	case Flag:
		b.ToggleFlag(c.X, c.Y)
	case Chord:
		b.Chord(c.X, c.Y)
	case Hint:
		b.HintReveal()
	case Forfeit:
		b.Forfeit()
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, c.Op)
	}
	return nil
}

// ApplyAll runs cmds in order and stops early once the game is over.
func ApplyAll(b *mines.Board, cmds []Command) error {
	for _, c := range cmds {
		if err := c.Apply(b); err != nil {
			return err
		}
		if b.Terminal() {
			return nil
		}
	}
	return nil
}
