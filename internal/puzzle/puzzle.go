// internal/puzzle/puzzle.go
//
// Registry of solvable days.
// Responsibilities:
//   - Puzzle: the untyped face of a day (number, title, Parse).
//   - Parsed: a parsed input that can answer both parts.
//   - Def: generic adapter from a day package's typed Parse/Part1/Part2.
//
// Parsed values are read-only for the solvers, so Part1 and Part2 may run
// concurrently on the same value.

package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownDay is returned by Get for a day with no registered solver.
var ErrUnknownDay = errors.New("puzzle: unknown day")

// Puzzle is one registered day.
type Puzzle interface {
	Day() int
	Title() string
	Parse(text string) (Parsed, error)
}

// Parsed is a successfully parsed input.
type Parsed interface {
	Part1() (uint64, error)
	Part2() (uint64, error)
}

// Def adapts typed solver functions to Puzzle.
type Def[T any] struct {
	Number int
	Name   string
	ParseF func(string) (T, error)
	Part1F func(T) (uint64, error)
	Part2F func(T) (uint64, error)
}

func (d Def[T]) Day() int { return d.Number }
func (d Def[T]) Title() string { return d.Name }

func (d Def[T]) Parse(text string) (Parsed, error) {
	v, err := d.ParseF(text)
	if err != nil {
		return nil, err
	}
	return parsed[T]{v: v, def: d}, nil
}

type parsed[T any] struct {
	v   T
	def Def[T]
}

func (p parsed[T]) Part1() (uint64, error) { return p.def.Part1F(p.v) }
func (p parsed[T]) Part2() (uint64, error) { return p.def.Part2F(p.v) }

// Infallible lifts a part that cannot fail.
func Infallible[T any](f func(T) uint64) func(T) (uint64, error) {
	return func(v T) (uint64, error) { return f(v), nil }
}

// Registry maps day numbers to puzzles. The zero value is not usable; use
// NewRegistry.
type Registry struct {
	byDay map[int]Puzzle
}

func NewRegistry(ps ...Puzzle) *Registry {
	r := &Registry{byDay: make(map[int]Puzzle, len(ps))}
	for _, p := range ps {
		r.Register(p)
	}
	return r
}

// Register adds p. Registering the same day twice panics.
func (r *Registry) Register(p Puzzle) {
	if _, dup := r.byDay[p.Day()]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day()))
	}
	r.byDay[p.Day()] = p
}

// Get returns the puzzle for day or an error wrapping ErrUnknownDay.
func (r *Registry) Get(day int) (Puzzle, error) {
	p, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return p, nil
}

// All lists the registered puzzles by ascending day.
func (r *Registry) All() []Puzzle {
	out := make([]Puzzle, 0, len(r.byDay))
	for _, p := range r.byDay {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Puzzle) int { return a.Day() - b.Day() })
	return out
}
