// Package dive follows submarine steering commands (day 2).
package dive

import (
	"errors"
	"strings"

	"github.com/robalobadob/aoc2021/internal/parse"
)

const Day = 2

// Direction is the verb of a steering command.
type Direction int

const (
	Forward Direction = iota
	Down
	Up
)

// Command is one parsed line, e.g. "forward 5".
type Command struct {
	Direction Direction
	Value     int64
}

// ErrAboveSurface is returned when the final depth is negative.
var ErrAboveSurface = errors.New("dive: submarine ended above the surface")

var errUnknownDirection = errors.New("unknown direction")

// Parse reads "<direction> <value>" per line. Directions are case-insensitive.
func Parse(text string) ([]Command, error) {
	lines := parse.Lines(text)
	if len(lines) == 0 {
		return nil, parse.Errorf(Day, 0, parse.ErrEmptyInput, "no commands")
	}
	out := make([]Command, 0, len(lines))
	for i, l := range lines {
		dir, val, ok := strings.Cut(strings.TrimSpace(l), " ")
		if !ok {
			return nil, parse.Errorf(Day, i+1, nil, "expected \"<direction> <value>\", got %q", l)
		}
		var d Direction
		switch strings.ToLower(dir) {
		case "forward":
			d = Forward
		case "down":
			d = Down
		case "up":
			d = Up
		default:
			return nil, parse.Errorf(Day, i+1, errUnknownDirection, "%q", dir)
		}
		v, err := parse.Uint(val, 32)
		if err != nil {
			return nil, parse.Errorf(Day, i+1, err, "invalid value %q", val)
		}
		out = append(out, Command{Direction: d, Value: int64(v)})
	}
	return out, nil
}

// Part1 treats down/up as direct depth changes.
func Part1(cmds []Command) (uint64, error) {
	var horiz, depth int64
	for _, c := range cmds {
		switch c.Direction {
		case Forward:
			horiz += c.Value
		case Down:
			depth += c.Value
		case Up:
			depth -= c.Value
		}
	}
	return product(horiz, depth)
}

// Part2 treats down/up as aim changes; forward moves along the aim.
func Part2(cmds []Command) (uint64, error) {
	var horiz, depth, aim int64
	for _, c := range cmds {
		switch c.Direction {
		case Forward:
			horiz += c.Value
			depth += c.Value * aim
		case Down:
			aim += c.Value
		case Up:
			aim -= c.Value
		}
	}
	return product(horiz, depth)
}

func product(horiz, depth int64) (uint64, error) {
	if depth < 0 {
		return 0, ErrAboveSurface
	}
	return uint64(horiz) * uint64(depth), nil
}
