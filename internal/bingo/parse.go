package bingo

import (
	"errors"
	"strings"

	"github.com/robalobadob/aoc2021/internal/parse"
)

// Day is the puzzle day this package solves.
const Day = 4

var (
	errNoDraws  = errors.New("missing draw list")
	errNoBoards = errors.New("no boards")
)

// Parse reads a draw list followed by blank-line separated 5x5 boards.
// Any malformed part rejects the whole input.
func Parse(text string) (*Game, error) {
	blocks := parse.Blocks(text)
	if len(blocks) == 0 {
		return nil, parse.Errorf(Day, 0, parse.ErrEmptyInput, "no draw list")
	}

	head := blocks[0]
	if len(head.Lines) != 1 {
		return nil, parse.Errorf(Day, head.Start, errNoDraws, "first block must be a single comma separated line")
	}
	raw, err := parse.CommaUints(head.Lines[0], 8)
	if err != nil {
		return nil, parse.Errorf(Day, head.Start, err, "invalid draw list")
	}
	draws := make([]uint8, len(raw))
	for i, v := range raw {
		draws[i] = uint8(v)
	}

	if len(blocks) == 1 {
		return nil, parse.Errorf(Day, 0, errNoBoards, "expected at least one board after the draw list")
	}
	boards := make([]Board, 0, len(blocks)-1)
	for _, blk := range blocks[1:] {
		b, err := parseBoard(blk)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return &Game{Draws: draws, Boards: boards}, nil
}

func parseBoard(blk parse.Block) (Board, error) {
	if len(blk.Lines) != Size {
		return Board{}, parse.Errorf(Day, blk.Start, nil, "board has %d rows, want %d", len(blk.Lines), Size)
	}
	var values [Size][Size]uint8
	for r, line := range blk.Lines {
		fields := strings.Fields(line)
		if len(fields) != Size {
			return Board{}, parse.Errorf(Day, blk.Start+r, nil, "row has %d numbers, want %d", len(fields), Size)
		}
		for c, f := range fields {
			v, err := parse.Uint(f, 8)
			if err != nil {
				return Board{}, parse.Errorf(Day, blk.Start+r, err, "invalid number %q", f)
			}
			values[r][c] = uint8(v)
		}
	}
	return NewBoard(values), nil
}
