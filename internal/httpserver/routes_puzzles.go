// internal/httpserver/routes_puzzles.go
//
// Puzzle and run endpoints:
//   - GET  /puzzles                    → registered days, titles and sample availability
//   - GET  /puzzles/{day}/sample       → embedded sample input (text/plain)
//   - POST /puzzles/{day}/solve        → solve {"input": "..."} or a raw text body
//   - GET  /puzzles/{day}/leaderboard  → fastest stored runs (?limit=)
//   - GET  /runs/{id}                  → one stored run
//
// Solve is attributed to the caller when a valid token is present.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/aoc2021/assets"
	"github.com/robalobadob/aoc2021/internal/bingo"
	"github.com/robalobadob/aoc2021/internal/crabs"
	"github.com/robalobadob/aoc2021/internal/dive"
	"github.com/robalobadob/aoc2021/internal/parse"
	"github.com/robalobadob/aoc2021/internal/puzzle"
	"github.com/robalobadob/aoc2021/internal/store"
)

// maxInputBytes bounds a solve request body.
const maxInputBytes = 1 << 20

// mountPuzzles registers the /puzzles and /runs/{id} routes.
func (s *Server) mountPuzzles(r chi.Router) {
	r.Get("/puzzles", s.handleListPuzzles)
	r.Route("/puzzles/{day}", func(r chi.Router) {
		r.Get("/sample", s.handleSample)
		r.Post("/solve", s.handleSolve)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
	r.Get("/runs/{id}", s.handleGetRun)
}

type puzzleRes struct {
	Day       int    `json:"day"`
	Title     string `json:"title"`
	HasSample bool   `json:"hasSample"`
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	days, err := assets.Days()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("list samples")
		writeError(w, http.StatusInternalServerError, "sample_index_failed", nil)
		return
	}
	out := []puzzleRes{}
	for _, p := range s.reg.All() {
		out = append(out, puzzleRes{
			Day:       p.Day(),
			Title:     p.Title(),
			HasSample: slices.Contains(days, p.Day()),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// dayParam resolves {day} to a registered puzzle, writing a 404 otherwise.
func (s *Server) dayParam(w http.ResponseWriter, r *http.Request) (puzzle.Puzzle, bool) {
	raw := chi.URLParam(r, "day")
	if day, err := strconv.Atoi(raw); err == nil {
		if p, err := s.reg.Get(day); err == nil {
			return p, true
		}
	}
	writeError(w, http.StatusNotFound, "unknown_day", map[string]any{"day": raw})
	return nil, false
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	p, ok := s.dayParam(w, r)
	if !ok {
		return
	}
	text, err := assets.Sample(p.Day())
	if err != nil {
		writeError(w, http.StatusNotFound, "no_sample", nil)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

type solveReq struct {
	Input string `json:"input"`
}

// readInput accepts either a JSON body {"input": "..."} or raw text.
func readInput(r *http.Request) (string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "application/json" {
		var req solveReq
		if err := json.Unmarshal(body, &req); err != nil {
			return "", err
		}
		return req.Input, nil
	}
	return string(body), nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	p, ok := s.dayParam(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxInputBytes)
	input, err := readInput(r)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "input_too_large", nil)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", map[string]any{"message": err.Error()})
		return
	}

	var userID string
	if me := userFrom(r.Context()); me != nil {
		userID = me.ID
	}
	res, err := s.runner.Solve(r.Context(), p.Day(), input, userID)
	if err != nil {
		s.solveError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// solveError maps solver failures to HTTP statuses.
func (s *Server) solveError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *parse.ParseError
	switch {
	case errors.As(err, &perr):
		writeError(w, http.StatusBadRequest, "parse_error", map[string]any{
			"message": perr.Error(),
			"line":    perr.Line,
		})
	case errors.Is(err, bingo.ErrNoWinner):
		writeError(w, http.StatusUnprocessableEntity, "no_winner", map[string]any{"message": err.Error()})
	case errors.Is(err, dive.ErrAboveSurface):
		writeError(w, http.StatusUnprocessableEntity, "unsolvable", map[string]any{"message": err.Error()})
	case errors.Is(err, crabs.ErrOverflow):
		writeError(w, http.StatusUnprocessableEntity, "unsolvable", map[string]any{"message": err.Error()})
	case errors.Is(err, puzzle.ErrUnknownDay):
		writeError(w, http.StatusNotFound, "unknown_day", nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		// the timeout middleware owns the response
		hlog.FromRequest(r).Debug().Err(err).Msg("solve abandoned")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("solve")
		writeError(w, http.StatusInternalServerError, "solve_failed", nil)
	}
}

// queryLimit reads ?limit=, falling back to store.DefaultLimit and capping at 100.
func queryLimit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return store.DefaultLimit
	}
	return min(n, 100)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	p, ok := s.dayParam(w, r)
	if !ok {
		return
	}
	rows, err := s.store.Leaderboard(r.Context(), p.Day(), queryLimit(r))
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": p.Day(), "rows": rows})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("get run")
		writeError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, run)
}
