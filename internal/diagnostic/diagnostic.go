// Package diagnostic decodes the binary diagnostic report (day 3).
package diagnostic

import (
	"errors"
	"strings"

	"github.com/robalobadob/aoc2021/internal/parse"
)

const Day = 3

// MaxWidth is the widest row accepted; gamma*epsilon must fit in a uint64.
const MaxWidth = 32

// Report holds equal-width binary rows. Bit 0 of the row is the leftmost
// character.
type Report struct {
	Width int
	Rows  []uint64
}

var (
	errWidth = errors.New("inconsistent row width")
	errDigit = errors.New("not a binary digit")
)

// Parse reads one binary string per line.
func Parse(text string) (*Report, error) {
	lines := parse.Lines(text)
	if len(lines) == 0 {
		return nil, parse.Errorf(Day, 0, parse.ErrEmptyInput, "no rows")
	}
	r := &Report{Width: len(strings.TrimSpace(lines[0]))}
	if r.Width == 0 || r.Width > MaxWidth {
		return nil, parse.Errorf(Day, 1, errWidth, "width %d outside 1..%d", r.Width, MaxWidth)
	}
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) != r.Width {
			return nil, parse.Errorf(Day, i+1, errWidth, "want %d digits, got %d", r.Width, len(l))
		}
		var v uint64
		for _, c := range l {
			switch c {
			case '0':
				v <<= 1
			case '1':
				v = v<<1 | 1
			default:
				return nil, parse.Errorf(Day, i+1, errDigit, "%q", c)
			}
		}
		r.Rows = append(r.Rows, v)
	}
	return r, nil
}

// bit reports whether position pos (0 = leftmost) of v is set.
func (r *Report) bit(v uint64, pos int) bool {
	return v>>(r.Width-1-pos)&1 == 1
}

// balance returns ones minus zeros at pos.
func (r *Report) balance(rows []uint64, pos int) int {
	n := 0
	for _, v := range rows {
		if r.bit(v, pos) {
			n++
		} else {
			n--
		}
	}
	return n
}

// Part1 is gamma * epsilon. A tied column counts toward epsilon.
func Part1(r *Report) uint64 {
	var gamma, eps uint64
	for pos := range r.Width {
		gamma <<= 1
		eps <<= 1
		if r.balance(r.Rows, pos) > 0 {
			gamma |= 1
		} else {
			eps |= 1
		}
	}
	return gamma * eps
}

// Part2 is the oxygen generator rating times the CO2 scrubber rating.
func Part2(r *Report) uint64 {
	return r.winnow(true) * r.winnow(false)
}

// winnow repeatedly filters rows by the most (or least) common bit at
// successive positions, wrapping around, until one row remains. A position
// whose filter would empty the set is skipped; a full cycle with no progress
// ends the search with the first remaining row.
func (r *Report) winnow(mostCommon bool) uint64 {
	rows := append([]uint64(nil), r.Rows...)
	stale := 0
	for pos := 0; len(rows) > 1 && stale < r.Width; pos = (pos + 1) % r.Width {
		bal := r.balance(rows, pos)
		want := bal >= 0
		if !mostCommon {
			want = bal < 0
		}
		kept := rows[:0:0]
		for _, v := range rows {
			if r.bit(v, pos) == want {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 || len(kept) == len(rows) {
			stale++
			continue
		}
		stale = 0
		rows = kept
	}
	return rows[0]
}
