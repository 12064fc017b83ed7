// Package vents counts hydrothermal vent line overlaps (day 5).
package vents

import (
	"errors"
	"strings"

	"github.com/robalobadob/aoc2021/internal/parse"
)

const Day = 5

type Point struct {
	X, Y uint16
}

// Line is a segment between two inclusive endpoints.
type Line struct {
	Start, End Point
}

var errSegment = errors.New(`expected "x1,y1 -> x2,y2"`)

// Parse reads one "x1,y1 -> x2,y2" segment per line.
func Parse(text string) ([]Line, error) {
	lines := parse.Lines(text)
	if len(lines) == 0 {
		return nil, parse.Errorf(Day, 0, parse.ErrEmptyInput, "no segments")
	}
	out := make([]Line, 0, len(lines))
	for i, l := range lines {
		a, b, ok := strings.Cut(l, "->")
		if !ok {
			return nil, parse.Errorf(Day, i+1, errSegment, "%q", l)
		}
		start, err := parsePoint(a)
		if err != nil {
			return nil, parse.Errorf(Day, i+1, err, "start %q", strings.TrimSpace(a))
		}
		end, err := parsePoint(b)
		if err != nil {
			return nil, parse.Errorf(Day, i+1, err, "end %q", strings.TrimSpace(b))
		}
		out = append(out, Line{Start: start, End: end})
	}
	return out, nil
}

func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, errSegment
	}
	x, err := parse.Uint(xs, 16)
	if err != nil {
		return Point{}, err
	}
	y, err := parse.Uint(ys, 16)
	if err != nil {
		return Point{}, err
	}
	return Point{X: uint16(x), Y: uint16(y)}, nil
}

// Points lists every point covered by l, from Start to End. Segments that
// are neither horizontal nor vertical are walked one step on both axes at a
// time and stop when the shorter axis is exhausted; they yield nothing
// unless diagonals is set.
func (l Line) Points(diagonals bool) []Point {
	switch {
	case l.Start.X == l.End.X:
		ys := span(l.Start.Y, l.End.Y)
		out := make([]Point, len(ys))
		for i, y := range ys {
			out[i] = Point{l.Start.X, y}
		}
		return out
	case l.Start.Y == l.End.Y:
		xs := span(l.Start.X, l.End.X)
		out := make([]Point, len(xs))
		for i, x := range xs {
			out[i] = Point{x, l.Start.Y}
		}
		return out
	case diagonals:
		xs, ys := span(l.Start.X, l.End.X), span(l.Start.Y, l.End.Y)
		n := min(len(xs), len(ys))
		out := make([]Point, n)
		for i := range n {
			out[i] = Point{xs[i], ys[i]}
		}
		return out
	default:
		return nil
	}
}

// span is the inclusive range from a to b, counting down when b < a.
func span(a, b uint16) []uint16 {
	out := make([]uint16, 0, absDiff(a, b)+1)
	if a <= b {
		for v := int(a); v <= int(b); v++ {
			out = append(out, uint16(v))
		}
		return out
	}
	for v := int(a); v >= int(b); v-- {
		out = append(out, uint16(v))
	}
	return out
}

func absDiff(a, b uint16) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Overlaps counts points covered by at least two segments.
func Overlaps(lines []Line, diagonals bool) uint64 {
	seen := make(map[Point]uint32)
	for _, l := range lines {
		for _, p := range l.Points(diagonals) {
			seen[p]++
		}
	}
	var n uint64
	for _, c := range seen {
		if c >= 2 {
			n++
		}
	}
	return n
}

// Part1 considers horizontal and vertical segments only.
func Part1(lines []Line) uint64 { return Overlaps(lines, false) }

// Part2 also considers diagonal segments.
func Part2(lines []Line) uint64 { return Overlaps(lines, true) }
