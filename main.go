// main.go
//
// aoc2021 command line.
//   serve                          HTTP API (see internal/httpserver)
//   solve --day N [--sample] [FILE|-]
//   days                           list registered puzzles and which have a sample
//
// Configuration comes from the environment and an optional .env file
// (see internal/config).

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/aoc2021/assets"
	"github.com/robalobadob/aoc2021/internal/bingo"
	"github.com/robalobadob/aoc2021/internal/config"
	"github.com/robalobadob/aoc2021/internal/httpserver"
	"github.com/robalobadob/aoc2021/internal/puzzle"
	"github.com/robalobadob/aoc2021/internal/runner"
	"github.com/robalobadob/aoc2021/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("aoc2021")
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config
	root := &cobra.Command{
		Use:           "aoc2021",
		Short:         "Advent of Code 2021 solver (days 1-7)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			setupLogging(cfg.LogLevel, cmd.Name() != "serve")
			return nil
		},
	}
	root.AddCommand(
		newServeCmd(&cfg),
		newSolveCmd(&cfg),
		newDaysCmd(),
	)
	return root
}

// setupLogging applies LOG_LEVEL; console output is for interactive commands.
func setupLogging(level string, console bool) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			st := store.NewMemoryStore()
			if cfg.DBPath != "" {
				db, err := openDB(cfg.DBPath)
				if err != nil {
					return fmt.Errorf("open db: %w", err)
				}
				defer db.Close()
				if err := migrate(db, store.Migrations); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				st = store.NewSQLite(db)
				log.Info().Str("path", cfg.DBPath).Msg("using sqlite store")
			} else {
				log.Info().Msg("using in-memory store")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpserver.New(*cfg, puzzle.Default(), st)
			log.Info().Str("port", cfg.Port).Msg("starting aoc2021 server")
			return srv.Start(ctx, ":"+cfg.Port)
		},
	}
}

func newSolveCmd(cfg *config.Config) *cobra.Command {
	var (
		day     int
		sample  bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "solve --day N [--sample] [FILE|-]",
		Short: "Solve both parts of a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSolveInput(cmd.InOrStdin(), day, sample, args)
			if err != nil {
				return err
			}
			res, err := runner.New(puzzle.Default(), nil, cfg.DigestSalt).Solve(cmd.Context(), day, input, "")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "part1: %d\npart2: %d\n", res.Part1, res.Part2)
			if verbose {
				log.Info().Int("day", day).Int64("elapsedMs", res.ElapsedMs).Str("digest", res.Digest).Msg("solved")
				if day == bingo.Day {
					return printBingoWinners(out, input)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&day, "day", "d", 0, "puzzle day (1-7)")
	cmd.Flags().BoolVar(&sample, "sample", false, "use the embedded sample input")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log timing and, for day 4, the winning boards")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}

// readSolveInput picks the embedded sample, a file, or stdin ("-" or no argument).
func readSolveInput(stdin io.Reader, day int, sample bool, args []string) (string, error) {
	if sample {
		if len(args) > 0 {
			return "", errors.New("--sample and FILE are mutually exclusive")
		}
		return assets.Sample(day)
	}
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

func printBingoWinners(w io.Writer, input string) error {
	g, err := bingo.Parse(input)
	if err != nil {
		return err
	}
	for _, p := range []bingo.Policy{bingo.FirstWin, bingo.LastWin} {
		o, err := g.Play(p)
		if err != nil {
			return err
		}
		if o.Board < 0 {
			fmt.Fprintf(w, "\n%s: no winner\n", p)
			continue
		}
		fmt.Fprintf(w, "\n%s: board %d won on draw %d (turn %d), score %d\n%s",
			p, o.Board, o.Draw, o.Turn+1, o.Score, o.Final)
	}
	return nil
}

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := assets.Days()
			if err != nil {
				return err
			}
			for _, p := range puzzle.Default().All() {
				line := fmt.Sprintf("%2d  %s", p.Day(), p.Title())
				if slices.Contains(samples, p.Day()) {
					line += "  (sample)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
