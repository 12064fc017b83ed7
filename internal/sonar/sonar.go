// Package sonar counts depth increases in a sonar sweep (day 1).
package sonar

import "github.com/robalobadob/aoc2021/internal/parse"

const Day = 1

// Parse reads one depth per line.
func Parse(text string) ([]uint32, error) {
	lines := parse.Lines(text)
	if len(lines) == 0 {
		return nil, parse.Errorf(Day, 0, parse.ErrEmptyInput, "no depths")
	}
	out := make([]uint32, 0, len(lines))
	for i, l := range lines {
		v, err := parse.Uint(l, 32)
		if err != nil {
			return nil, parse.Errorf(Day, i+1, err, "invalid depth %q", l)
		}
		out = append(out, uint32(v))
	}
	return out, nil
}

// Part1 counts measurements larger than the one before.
func Part1(depths []uint32) uint64 {
	return increases(depths)
}

// Part2 counts increases of the three-measurement sliding window sum.
func Part2(depths []uint32) uint64 {
	if len(depths) < 3 {
		return 0
	}
	sums := make([]uint64, 0, len(depths)-2)
	for i := 0; i+3 <= len(depths); i++ {
		sums = append(sums, uint64(depths[i])+uint64(depths[i+1])+uint64(depths[i+2]))
	}
	return increases(sums)
}

func increases[T uint32 | uint64](xs []T) uint64 {
	var n uint64
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[i-1] {
			n++
		}
	}
	return n
}
