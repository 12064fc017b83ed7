package puzzle

import (
	"sync"

	"github.com/robalobadob/aoc2021/internal/bingo"
	"github.com/robalobadob/aoc2021/internal/crabs"
	"github.com/robalobadob/aoc2021/internal/diagnostic"
	"github.com/robalobadob/aoc2021/internal/dive"
	"github.com/robalobadob/aoc2021/internal/lanternfish"
	"github.com/robalobadob/aoc2021/internal/sonar"
	"github.com/robalobadob/aoc2021/internal/vents"
)

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry of every day this module solves.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry(
			Def[[]uint32]{
				Number: sonar.Day, Name: "Sonar Sweep",
				ParseF: sonar.Parse,
				Part1F: Infallible(sonar.Part1),
				Part2F: Infallible(sonar.Part2),
			},
			Def[[]dive.Command]{
				Number: dive.Day, Name: "Dive!",
				ParseF: dive.Parse,
				Part1F: dive.Part1,
				Part2F: dive.Part2,
			},
			Def[*diagnostic.Report]{
				Number: diagnostic.Day, Name: "Binary Diagnostic",
				ParseF: diagnostic.Parse,
				Part1F: Infallible(diagnostic.Part1),
				Part2F: Infallible(diagnostic.Part2),
			},
			Def[*bingo.Game]{
				Number: bingo.Day, Name: "Giant Squid",
				ParseF: bingo.Parse,
				Part1F: bingo.Part1,
				Part2F: Infallible(bingo.Part2),
			},
			Def[[]vents.Line]{
				Number: vents.Day, Name: "Hydrothermal Venture",
				ParseF: vents.Parse,
				Part1F: Infallible(vents.Part1),
				Part2F: Infallible(vents.Part2),
			},
			Def[lanternfish.School]{
				Number: lanternfish.Day, Name: "Lanternfish",
				ParseF: lanternfish.Parse,
				Part1F: Infallible(lanternfish.Part1),
				Part2F: Infallible(lanternfish.Part2),
			},
			Def[[]uint64]{
				Number: crabs.Day, Name: "The Treachery of Whales",
				ParseF: crabs.Parse,
				Part1F: crabs.Part1,
				Part2F: crabs.Part2,
			},
		)
	})
	return defaultReg
}
