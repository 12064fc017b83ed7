// internal/runner/runner.go
//
// Solves a day's input end to end.
// Flow:
//   1. Resolve the day in the registry and fingerprint the input.
//   2. Return the stored run when the same input was solved before.
//   3. Parse once, then run both parts concurrently on the shared parsed
//      value. A failure in either part, or ctx ending before both finish,
//      fails the run and nothing is stored.
//   4. Record the run with a fresh id and the wall-clock time of both parts.

package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/aoc2021/internal/digest"
	"github.com/robalobadob/aoc2021/internal/puzzle"
	"github.com/robalobadob/aoc2021/internal/store"
)

// Result is a solved (or cached) run.
type Result struct {
	store.Run
	Cached bool `json:"cached"`
}

type Runner struct {
	reg   *puzzle.Registry
	store store.Store
	salt  string
	now   func() time.Time
}

// New builds a Runner. st may be nil, which disables caching and history.
func New(reg *puzzle.Registry, st store.Store, salt string) *Runner {
	return &Runner{reg: reg, store: st, salt: salt, now: time.Now}
}

// Solve answers both parts of day for input, attributing a new run to
// userID (empty for guests).
func (r *Runner) Solve(ctx context.Context, day int, input, userID string) (Result, error) {
	p, err := r.reg.Get(day)
	if err != nil {
		return Result{}, err
	}
	sum := digest.Sum(r.salt, day, input)
	logger := log.With().Int("day", day).Str("digest", digest.Short(sum)).Logger()

	if r.store != nil {
		prev, err := r.store.FindRun(ctx, day, sum)
		switch {
		case err == nil:
			logger.Debug().Str("runId", prev.ID).Msg("cache hit")
			return Result{Run: prev, Cached: true}, nil
		case !errors.Is(err, store.ErrNotFound):
			return Result{}, fmt.Errorf("runner: lookup: %w", err)
		}
	}

	start := r.now()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	parsed, err := p.Parse(input)
	if err != nil {
		return Result{}, err
	}

	var p1, p2 uint64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		v, err := parsed.Part1()
		if err != nil {
			return fmt.Errorf("part 1: %w", err)
		}
		p1 = v
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		v, err := parsed.Part2()
		if err != nil {
			return fmt.Errorf("part 2: %w", err)
		}
		p2 = v
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Debug().Err(err).Msg("run failed")
		return Result{}, err
	}
	// parts do not observe ctx; a run that outlived it is discarded
	if err := ctx.Err(); err != nil {
		logger.Debug().Err(err).Msg("run abandoned")
		return Result{}, err
	}
	end := r.now()

	run := store.Run{
		ID:        uuid.NewString(),
		Day:       day,
		Digest:    sum,
		Part1:     p1,
		Part2:     p2,
		ElapsedMs: end.Sub(start).Milliseconds(),
		UserID:    userID,
		CreatedAt: end.UTC(),
	}
	if r.store != nil {
		if err := r.store.SaveRun(ctx, run); err != nil {
			return Result{}, fmt.Errorf("runner: save: %w", err)
		}
	}
	logger.Debug().Str("runId", run.ID).Int64("elapsedMs", run.ElapsedMs).Msg("solved")
	return Result{Run: run}, nil
}
