package bingo

import (
	"fmt"
	"strings"
)

// NewBoard builds an Active board with every cell unmarked.
func NewBoard(values [Size][Size]uint8) Board {
	var b Board
	for r := range Size {
		for c := range Size {
			b.cells[r][c] = Cell{Value: values[r][c]}
		}
	}
	return b
}

// State reports whether the board has won.
func (b *Board) State() State { return b.state }

// Cell returns the cell at (row, col). It panics on out-of-range indices.
func (b *Board) Cell(row, col int) Cell { return b.cells[row][col] }

// MarkAndCheckWin marks the first cell (row-major) holding value and reports
// whether that mark moved the board from Active to Won.
//
// Only the first matching cell is ever considered: a duplicate value later on
// the board is never marked, and re-drawing a value whose first cell is
// already marked changes nothing. A board that has already won keeps
// accepting marks but never reports a second win.
func (b *Board) MarkAndCheckWin(value uint8) bool {
	row, col, ok := b.find(value)
	if !ok || b.cells[row][col].Marked {
		return false
	}
	b.cells[row][col].Marked = true
	if b.state == Won {
		return false
	}
	if b.rowComplete(row) || b.colComplete(col) {
		b.state = Won
		return true
	}
	return false
}

// SumUnmarked adds the values of all unmarked cells.
func (b *Board) SumUnmarked() uint64 {
	var sum uint64
	for r := range Size {
		for c := range Size {
			if !b.cells[r][c].Marked {
				sum += uint64(b.cells[r][c].Value)
			}
		}
	}
	return sum
}

func (b *Board) find(value uint8) (row, col int, ok bool) {
	for r := range Size {
		for c := range Size {
			if b.cells[r][c].Value == value {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (b *Board) rowComplete(row int) bool {
	for c := range Size {
		if !b.cells[row][c].Marked {
			return false
		}
	}
	return true
}

func (b *Board) colComplete(col int) bool {
	for r := range Size {
		if !b.cells[r][col].Marked {
			return false
		}
	}
	return true
}

// String renders the grid with marked cells in brackets.
func (b Board) String() string {
	var sb strings.Builder
	for r := range Size {
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := b.cells[r][c]
			if cell.Marked {
				fmt.Fprintf(&sb, "[%2d]", cell.Value)
			} else {
				fmt.Fprintf(&sb, " %2d ", cell.Value)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
