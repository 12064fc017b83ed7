// Package lanternfish models an exponentially growing school of fish (day 6).
package lanternfish

import (
	"errors"

	"github.com/robalobadob/aoc2021/internal/parse"
)

const Day = 6

// School counts fish by internal timer value (0..8).
type School [9]uint64

var errTimer = errors.New("timer outside 0..8")

// Parse reads a comma separated list of timers.
func Parse(text string) (School, error) {
	var s School
	lines := parse.Lines(text)
	if len(lines) == 0 {
		return s, parse.Errorf(Day, 0, parse.ErrEmptyInput, "no fish")
	}
	if len(lines) > 1 {
		return s, parse.Errorf(Day, 2, nil, "expected a single line of timers")
	}
	timers, err := parse.CommaUints(lines[0], 8)
	if err != nil {
		return s, parse.Errorf(Day, 1, err, "invalid timers")
	}
	for _, t := range timers {
		if t > 8 {
			return School{}, parse.Errorf(Day, 1, errTimer, "timer %d", t)
		}
		s[t]++
	}
	return s, nil
}

// Advance returns the school after days have passed. Fish at 0 reset to 6
// and spawn a new fish at 8.
func (s School) Advance(days int) School {
	for range days {
		spawning := s[0]
		copy(s[:], s[1:])
		s[8] = spawning
		s[6] += spawning
	}
	return s
}

// Count is the total number of fish.
func (s School) Count() uint64 {
	var n uint64
	for _, c := range s {
		n += c
	}
	return n
}

func Part1(s School) uint64 { return s.Advance(80).Count() }

func Part2(s School) uint64 { return s.Advance(256).Count() }
