package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/aoc2021/assets"
	"github.com/robalobadob/aoc2021/internal/bingo"
	"github.com/robalobadob/aoc2021/internal/parse"
)

func TestDefaultSolvesEverySample(t *testing.T) {
	want := map[int][2]uint64{
		1: {7, 5},
		2: {150, 900},
		3: {198, 230},
		4: {4512, 1924},
		5: {5, 12},
		6: {5934, 26984457539},
		7: {37, 168},
	}
	reg := Default()
	require.Len(t, reg.All(), len(want))

	for day, answers := range want {
		p, err := reg.Get(day)
		require.NoError(t, err)
		assert.Equal(t, day, p.Day())
		assert.NotEmpty(t, p.Title())

		in, err := assets.Sample(day)
		require.NoError(t, err)
		parsed, err := p.Parse(in)
		require.NoError(t, err, "day %d", day)

		p1, err := parsed.Part1()
		require.NoError(t, err)
		p2, err := parsed.Part2()
		require.NoError(t, err)
		assert.Equal(t, answers, [2]uint64{p1, p2}, "day %d", day)
	}
}

func TestAllIsSorted(t *testing.T) {
	var days []int
	for _, p := range Default().All() {
		days = append(days, p.Day())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, days)
}

func TestUnknownDay(t *testing.T) {
	_, err := Default().Get(25)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestParseErrorPassesThrough(t *testing.T) {
	p, err := Default().Get(bingo.Day)
	require.NoError(t, err)
	_, err = p.Parse("1,2,3")
	var perr *parse.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	d := Def[int]{Number: 1, Name: "x"}
	assert.Panics(t, func() { NewRegistry(d, d) })
}
