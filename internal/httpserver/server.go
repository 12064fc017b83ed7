// internal/httpserver/server.go
//
// HTTP server wiring for the puzzle solver.
// Responsibilities:
//   - Router + middleware (request IDs, access log, JSON, CORS, timeouts, panic recovery).
//   - Public endpoints: "/", "/health".
//   - Puzzle endpoints (optional auth): /puzzles, /puzzles/{day}/*, /runs/{id}.
//   - Auth + history endpoints: /auth/*, /runs/mine.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token is present;
//     routes still run for guests.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/aoc2021/internal/auth"
	"github.com/robalobadob/aoc2021/internal/config"
	"github.com/robalobadob/aoc2021/internal/puzzle"
	"github.com/robalobadob/aoc2021/internal/runner"
	"github.com/robalobadob/aoc2021/internal/store"
)

// Server bundles the router and its dependencies.
type Server struct {
	r      *chi.Mux
	cfg    config.Config
	reg    *puzzle.Registry
	store  store.Store
	runner *runner.Runner
	tokens *auth.Issuer
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, reg *puzzle.Registry, st store.Store) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		cfg:    cfg,
		reg:    reg,
		store:  st,
		runner: runner.New(reg, st, cfg.DigestSalt),
		tokens: auth.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog(log.Logger))           // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "aoc2021",
			"endpoints": []string{"/health", "/puzzles", "POST /puzzles/{day}/solve", "/runs/{id}", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// Puzzles + runs (optional auth: guests can solve)
	s.mountPuzzles(s.r.With(s.withOptionalAuth()))

	// Auth + history
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code} plus any extra fields.
func writeError(w http.ResponseWriter, status int, code string, extra map[string]any) {
	body := map[string]any{"error": code}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, status, body)
}
