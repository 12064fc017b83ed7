package bingo

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/aoc2021/internal/parse"
)

const sampleInput = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

var sampleDraws = []uint8{
	7, 4, 9, 5, 11, 17, 23, 2, 0, 14, 21, 24, 10, 16, 13, 6, 15, 25, 12, 22, 18, 20, 8, 19, 3, 26, 1,
}

// sequential returns a board holding 0..24 in row-major order.
func sequential() Board {
	var v [Size][Size]uint8
	for r := range Size {
		for c := range Size {
			v[r][c] = uint8(r*Size + c)
		}
	}
	return NewBoard(v)
}

func mustParse(t *testing.T, text string) *Game {
	t.Helper()
	g, err := Parse(text)
	require.NoError(t, err)
	return g
}

func TestParseSample(t *testing.T) {
	g := mustParse(t, sampleInput)

	assert.Equal(t, sampleDraws, g.Draws)
	require.Len(t, g.Boards, 3)

	want := NewBoard([Size][Size]uint8{
		{22, 13, 17, 11, 0},
		{8, 2, 23, 4, 24},
		{21, 9, 14, 16, 7},
		{6, 10, 3, 18, 5},
		{1, 12, 20, 15, 19},
	})
	if diff := cmp.Diff(want, g.Boards[0], cmp.AllowUnexported(Board{})); diff != "" {
		t.Errorf("board 0 mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAcceptsCRLF(t *testing.T) {
	g := mustParse(t, strings.ReplaceAll(sampleInput, "\n", "\r\n"))
	assert.Len(t, g.Boards, 3)
	assert.Len(t, g.Draws, 27)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"empty", "", 0},
		{"missing draw list", "22 13 17 11 0\n8 2 23 4 24\n21 9 14 16 7\n6 10 3 18 5\n1 12 20 15 19\n", 1},
		{"no boards", "1,2,3\n", 0},
		{"short row", "1,2\n\n1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n\n1 2 3 4 5\n6 7 8 9\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n", 10},
		{"four rows", "1,2\n\n1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n", 3},
		{"non integer", "1,2\n\n1 2 3 4 x\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n", 3},
		{"bad draw", "1,a,3\n\n1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n", 1},
		{"out of range", "1,2\n\n1 2 3 4 500\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(tc.input)
			assert.Nil(t, g, "no partial game on error")
			var perr *parse.ParseError
			require.True(t, errors.As(err, &perr), "want *parse.ParseError, got %T: %v", err, err)
			assert.Equal(t, Day, perr.Day)
			assert.Equal(t, tc.line, perr.Line)
		})
	}
}

func TestFirstWinnerSample(t *testing.T) {
	g := mustParse(t, sampleInput)

	o, err := g.FirstWinner()
	require.NoError(t, err)
	assert.Equal(t, Won, o.Final.State())
	assert.Equal(t, o.Unmarked, o.Final.SumUnmarked())
	o.Final = Board{}
	assert.Equal(t, Outcome{Board: 2, Turn: 11, Draw: 24, Unmarked: 188, Score: 4512}, o)
}

func TestLastWinnerSample(t *testing.T) {
	g := mustParse(t, sampleInput)

	o := g.LastWinner()
	assert.Equal(t, Won, o.Final.State())
	o.Final = Board{}
	assert.Equal(t, Outcome{Board: 1, Turn: 14, Draw: 13, Unmarked: 148, Score: 1924}, o)
}

func TestPartsAndPlay(t *testing.T) {
	g := mustParse(t, sampleInput)

	p1, err := Part1(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(4512), p1)
	assert.Equal(t, uint64(1924), Part2(g))

	o, err := g.Play(LastWin)
	require.NoError(t, err)
	assert.Equal(t, uint64(1924), o.Score)

	_, err = g.Play(Policy(9))
	assert.Error(t, err)
}

func TestRunsDoNotMutateGame(t *testing.T) {
	g := mustParse(t, sampleInput)

	for range 3 {
		o, err := g.FirstWinner()
		require.NoError(t, err)
		assert.Equal(t, uint64(4512), o.Score)
		assert.Equal(t, uint64(1924), g.LastWinner().Score)
	}
	for i := range g.Boards {
		assert.Equal(t, Active, g.Boards[i].State())
		for r := range Size {
			for c := range Size {
				assert.False(t, g.Boards[i].Cell(r, c).Marked)
			}
		}
	}
}

func TestConcurrentRunsAreIndependent(t *testing.T) {
	g := mustParse(t, sampleInput)

	var wg sync.WaitGroup
	scores := make([][2]uint64, 16)
	for i := range scores {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := g.FirstWinner()
			if err == nil {
				scores[i][0] = o.Score
			}
			scores[i][1] = g.LastWinner().Score
		}()
	}
	wg.Wait()
	for _, s := range scores {
		assert.Equal(t, [2]uint64{4512, 1924}, s)
	}
}

func TestMarkAbsentValueIsNoop(t *testing.T) {
	b := sequential()
	before := b

	assert.False(t, b.MarkAndCheckWin(99))
	assert.Equal(t, before, b)
	assert.Equal(t, Active, b.State())
}

func TestSumUnmarkedFullyMarked(t *testing.T) {
	b := sequential()
	assert.Equal(t, uint64(300), b.SumUnmarked())
	for v := range 25 {
		b.MarkAndCheckWin(uint8(v))
	}
	assert.Equal(t, uint64(0), b.SumUnmarked())
}

func TestWinLatchesOnce(t *testing.T) {
	b := sequential()

	// Row 0: 0..4, the fifth mark wins.
	for v := range 4 {
		assert.False(t, b.MarkAndCheckWin(uint8(v)))
	}
	assert.True(t, b.MarkAndCheckWin(4))
	assert.Equal(t, Won, b.State())

	// Completing column 0 afterwards is not a second win.
	for _, v := range []uint8{5, 10, 15} {
		assert.False(t, b.MarkAndCheckWin(v))
	}
	assert.False(t, b.MarkAndCheckWin(20))
	assert.True(t, b.Cell(4, 0).Marked, "won boards still accept marks")
	assert.Equal(t, Won, b.State())
}

func TestColumnWin(t *testing.T) {
	b := sequential()
	for _, v := range []uint8{2, 7, 12, 17} {
		assert.False(t, b.MarkAndCheckWin(v))
	}
	assert.True(t, b.MarkAndCheckWin(22))
	assert.Equal(t, uint64(300-60), b.SumUnmarked())
}

func TestRedrawMarkedValue(t *testing.T) {
	b := sequential()
	for v := range 5 {
		b.MarkAndCheckWin(uint8(v))
	}
	snapshot := b

	assert.False(t, b.MarkAndCheckWin(3))
	assert.Equal(t, snapshot, b)
}

func TestDuplicateValueMarksFirstCellOnly(t *testing.T) {
	v := [Size][Size]uint8{
		{5, 1, 2, 3, 4},
		{6, 5, 7, 8, 9},
		{10, 11, 12, 13, 14},
		{15, 16, 17, 18, 19},
		{20, 21, 22, 23, 24},
	}
	b := NewBoard(v)

	assert.False(t, b.MarkAndCheckWin(5))
	assert.True(t, b.Cell(0, 0).Marked)
	assert.False(t, b.Cell(1, 1).Marked)

	assert.False(t, b.MarkAndCheckWin(5))
	assert.False(t, b.Cell(1, 1).Marked, "second occurrence is never marked")

	// Row 1 can never complete because (1,1) stays unmarked.
	for _, x := range []uint8{6, 7, 8, 9} {
		assert.False(t, b.MarkAndCheckWin(x))
	}
	assert.Equal(t, Active, b.State())
}

func TestNoWinner(t *testing.T) {
	g := &Game{Draws: []uint8{0, 6, 12, 18}, Boards: []Board{sequential(), sequential()}}

	o, err := g.FirstWinner()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoWinner)
	var nw *NoWinnerError
	require.True(t, errors.As(err, &nw))
	assert.Equal(t, 4, nw.Draws)
	assert.Equal(t, 2, nw.Boards)
	assert.Equal(t, -1, o.Board)

	last := g.LastWinner()
	assert.Equal(t, -1, last.Board)
	assert.Equal(t, uint64(0), last.Score)
}

func TestLastWinnerOnFinalDraw(t *testing.T) {
	early := sequential()
	var v [Size][Size]uint8
	for r := range Size {
		for c := range Size {
			v[r][c] = uint8(50 + r*Size + c)
		}
	}
	late := NewBoard(v)

	// Row 0 of the first board, then column 4 of the second ending on 74.
	draws := []uint8{0, 1, 2, 3, 4, 54, 59, 64, 69, 74}
	g := &Game{Draws: draws, Boards: []Board{early, late}}

	o := g.LastWinner()
	assert.Equal(t, 1, o.Board)
	assert.Equal(t, len(draws)-1, o.Turn)
	assert.Equal(t, uint8(74), o.Draw)

	var sum uint64
	for r := range Size {
		for c := range Size - 1 {
			sum += uint64(v[r][c])
		}
	}
	assert.Equal(t, sum*74, o.Score)

	first, err := g.FirstWinner()
	require.NoError(t, err)
	assert.Equal(t, 0, first.Board)
	assert.Equal(t, uint64(300-10)*4, first.Score)
}

func TestBoardString(t *testing.T) {
	b := sequential()
	b.MarkAndCheckWin(0)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, Size)
	assert.True(t, strings.HasPrefix(lines[0], "[ 0]"))
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "last-win", LastWin.String())
}
