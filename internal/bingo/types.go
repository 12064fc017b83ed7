// internal/bingo/types.go
//
// Core type definitions for the Bingo tournament simulator.
// Defines:
//   - Cell:    one numbered square and its marked flag.
//   - State:   the Active/Won latch carried by every board.
//   - Board:   a fixed 5x5 grid of cells plus its state.
//   - Game:    the draw sequence and the initial board set.
//   - Outcome: which board won, on which draw, and its score.

package bingo

// Size is the edge length of every board.
const Size = 5

// Cell is a single square on a board.
// Marked only ever moves from false to true.
type Cell struct {
	Value  uint8
	Marked bool
}

// State is the win latch of a board.
type State uint8

const (
	Active State = iota
	Won
)

func (s State) String() string {
	if s == Won {
		return "won"
	}
	return "active"
}

// Board is a 5x5 grid of cells. It is a value type: copying a Board copies
// its cells, so independent simulations never share marks.
type Board struct {
	cells [Size][Size]Cell
	state State
}

// Game is a parsed bingo input. Policies never mutate Boards; each run
// works on its own clone.
type Game struct {
	Draws  []uint8
	Boards []Board
}

// Policy selects which winner a simulation scores.
type Policy int

const (
	FirstWin Policy = iota // earliest board to win
	LastWin                // board that wins after all others
)

func (p Policy) String() string {
	switch p {
	case FirstWin:
		return "first-win"
	case LastWin:
		return "last-win"
	default:
		return "unknown"
	}
}

// Outcome records the winning board for a policy run.
// Board is -1 when no board ever won. Final is a snapshot of the winning
// board at the moment it won.
type Outcome struct {
	Board    int    `json:"board"`
	Turn     int    `json:"turn"`
	Draw     uint8  `json:"draw"`
	Unmarked uint64 `json:"unmarked"`
	Score    uint64 `json:"score"`
	Final    Board  `json:"-"`
}
