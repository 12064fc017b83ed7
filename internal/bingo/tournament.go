// internal/bingo/tournament.go
//
// Tournament controller: drives the draw sequence against every board.
//
// Policies:
//   - FirstWin: the first board to win ends the game; running out of draws
//     without a winner is a fatal input error (NoWinnerError).
//   - LastWin: boards that already won are skipped; the last transition to
//     Won is scored. No winner at all yields a zero score and no error.
//
// Each run clones the initial boards, so a Game can be simulated any number
// of times, from any number of goroutines.

package bingo

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoWinner is matched by NoWinnerError via errors.Is.
var ErrNoWinner = errors.New("bingo: no board won")

// NoWinnerError reports that the draw sequence was exhausted under the
// first-win policy without any board winning. A valid puzzle always has a
// winner, so callers must treat this as fatal.
type NoWinnerError struct {
	Draws  int
	Boards int
}

func (e *NoWinnerError) Error() string {
	return fmt.Sprintf("bingo: no board won after %d draws across %d boards", e.Draws, e.Boards)
}

func (e *NoWinnerError) Is(target error) bool { return target == ErrNoWinner }

// Play simulates the game under policy p.
func (g *Game) Play(p Policy) (Outcome, error) {
	switch p {
	case FirstWin:
		return g.FirstWinner()
	case LastWin:
		return g.LastWinner(), nil
	default:
		return Outcome{}, fmt.Errorf("bingo: unknown policy %d", int(p))
	}
}

// FirstWinner returns the outcome of the earliest board to win.
func (g *Game) FirstWinner() (Outcome, error) {
	boards := slices.Clone(g.Boards)
	for turn, draw := range g.Draws {
		for i := range boards {
			if boards[i].MarkAndCheckWin(draw) {
				return outcome(&boards[i], i, turn, draw), nil
			}
		}
	}
	return Outcome{Board: -1}, &NoWinnerError{Draws: len(g.Draws), Boards: len(g.Boards)}
}

// LastWinner returns the outcome of the board that wins last.
// If no board ever wins, Board is -1 and Score is 0.
func (g *Game) LastWinner() Outcome {
	boards := slices.Clone(g.Boards)
	last := Outcome{Board: -1}
	for turn, draw := range g.Draws {
		for i := range boards {
			if boards[i].State() == Won {
				continue
			}
			if boards[i].MarkAndCheckWin(draw) {
				last = outcome(&boards[i], i, turn, draw)
			}
		}
	}
	return last
}

func outcome(b *Board, idx, turn int, draw uint8) Outcome {
	unmarked := b.SumUnmarked()
	return Outcome{
		Board:    idx,
		Turn:     turn,
		Draw:     draw,
		Unmarked: unmarked,
		Score:    unmarked * uint64(draw),
		Final:    *b,
	}
}

// Part1 is the first-winner score.
func Part1(g *Game) (uint64, error) {
	o, err := g.FirstWinner()
	if err != nil {
		return 0, err
	}
	return o.Score, nil
}

// Part2 is the last-winner score.
func Part2(g *Game) uint64 {
	return g.LastWinner().Score
}
