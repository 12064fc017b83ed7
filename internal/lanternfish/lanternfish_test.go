package lanternfish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/aoc2021/internal/parse"
)

func TestParse(t *testing.T) {
	s, err := Parse("3,4,3,1,2\n")
	require.NoError(t, err)
	assert.Equal(t, School{0, 1, 1, 2, 1, 0, 0, 0, 0}, s)
}

func TestSample(t *testing.T) {
	s, err := Parse("3,4,3,1,2")
	require.NoError(t, err)
	assert.Equal(t, uint64(26), s.Advance(18).Count())
	assert.Equal(t, uint64(5934), Part1(s))
	assert.Equal(t, uint64(26984457539), Part2(s))
	// Advance works on a copy
	assert.Equal(t, uint64(5), s.Count())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("3,9,1")
	assert.ErrorIs(t, err, errTimer)

	_, err = Parse("3,,1")
	var perr *parse.ParseError
	assert.ErrorAs(t, err, &perr)

	_, err = Parse("")
	assert.ErrorIs(t, err, parse.ErrEmptyInput)
}
