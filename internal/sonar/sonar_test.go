package sonar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/aoc2021/internal/parse"
)

const sample = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"

func TestSample(t *testing.T) {
	depths, err := Parse(sample)
	require.NoError(t, err)
	assert.Len(t, depths, 10)

	assert.Equal(t, uint64(7), Part1(depths))
	assert.Equal(t, uint64(5), Part2(depths))
}

func TestShortInputs(t *testing.T) {
	assert.Equal(t, uint64(0), Part1([]uint32{5}))
	assert.Equal(t, uint64(0), Part2([]uint32{1, 2}))
	assert.Equal(t, uint64(0), Part2([]uint32{1, 2, 3}))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("1\n2\nthree\n")
	var perr *parse.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)

	_, err = Parse("\n")
	assert.ErrorIs(t, err, parse.ErrEmptyInput)
}
