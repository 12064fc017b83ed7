// Package crabs aligns crab submarines at the cheapest position (day 7).
package crabs

import (
	"errors"
	"math/bits"
	"slices"

	"github.com/robalobadob/aoc2021/internal/parse"
)

const Day = 7

// Parse reads a comma separated list of horizontal positions.
func Parse(text string) ([]uint64, error) {
	lines := parse.Lines(text)
	if len(lines) == 0 {
		return nil, parse.Errorf(Day, 0, parse.ErrEmptyInput, "no crabs")
	}
	if len(lines) > 1 {
		return nil, parse.Errorf(Day, 2, nil, "expected a single line of positions")
	}
	pos, err := parse.CommaUints(lines[0], 32)
	if err != nil {
		return nil, parse.Errorf(Day, 1, err, "invalid positions")
	}
	return pos, nil
}

// ErrOverflow is returned when the total fuel does not fit in a uint64.
var ErrOverflow = errors.New("crabs: total fuel overflows uint64")

// Cost is the fuel a crab spends to move dist steps; ok is false when the
// cost does not fit in a uint64.
type Cost func(dist uint64) (fuel uint64, ok bool)

// Linear burns one unit per step.
func Linear(d uint64) (uint64, bool) { return d, true }

// Triangular burns one more unit than the previous step: d(d+1)/2.
func Triangular(d uint64) (uint64, bool) {
	hi, lo := bits.Mul64(d, d+1)
	if hi > 1 {
		return 0, false
	}
	return hi<<63 | lo>>1, true
}

// Fuel is the total cost of moving every crab to target.
func Fuel(pos []uint64, target uint64, cost Cost) (uint64, error) {
	var total uint64
	for _, p := range pos {
		f, ok := cost(max(p, target) - min(p, target))
		if !ok {
			return 0, ErrOverflow
		}
		var carry uint64
		if total, carry = bits.Add64(total, f, 0); carry != 0 {
			return 0, ErrOverflow
		}
	}
	return total, nil
}

// Part1 aligns on the median, which minimizes the sum of distances.
func Part1(pos []uint64) (uint64, error) {
	if len(pos) == 0 {
		return 0, nil
	}
	sorted := slices.Clone(pos)
	slices.Sort(sorted)
	return Fuel(pos, sorted[(len(sorted)-1)/2], Linear)
}

// Part2 searches around the mean. The cost is convex and its real minimum
// lies within half a step of the mean, so the best integer target is one of
// the four integers around it.
func Part2(pos []uint64) (uint64, error) {
	if len(pos) == 0 {
		return 0, nil
	}
	var sum uint64
	for _, p := range pos {
		sum += p
	}
	mean := sum / uint64(len(pos))
	lo, hi := slices.Min(pos), slices.Max(pos)
	first := max(mean, lo+1) - 1
	best := ^uint64(0)
	for i := range uint64(4) {
		target := first + i
		if target > hi || target < first {
			break
		}
		f, err := Fuel(pos, target, Triangular)
		if err != nil {
			return 0, err
		}
		best = min(best, f)
	}
	return best, nil
}
