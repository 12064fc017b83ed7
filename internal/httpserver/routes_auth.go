// internal/httpserver/routes_auth.go
//
// Account endpoints:
//   - POST /auth/signup  → create user, set auth cookie
//   - POST /auth/login   → verify password, set auth cookie
//   - POST /auth/logout  → clear auth cookie
//   - GET  /auth/me      → current user (requires auth)
//   - GET  /runs/mine    → caller's recent runs (requires auth)

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/aoc2021/internal/auth"
	"github.com/robalobadob/aoc2021/internal/store"
)

// credentialsReq is the payload for signup and login.
type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) mountAuthRoutes() {
	s.r.Post("/auth/signup", s.handleSignup)
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	s.r.With(s.requireAuth()).Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, userFrom(r.Context()))
	})
	s.r.With(s.requireAuth()).Get("/runs/mine", s.handleMyRuns)
}

// handleSignup creates a new user, signs a JWT and sets the auth cookie.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	username := auth.NormalizeUsername(body.Username)
	if err := auth.ValidateSignup(username, body.Password); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_signup", map[string]any{"message": err.Error()})
		return
	}
	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "hash_failed", nil)
		return
	}
	u := store.User{ID: uuid.NewString(), Username: username, PasswordHash: hash, CreatedAt: time.Now().UTC()}
	if err := s.store.CreateUser(r.Context(), u); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			writeError(w, http.StatusConflict, "username_taken", nil)
			return
		}
		hlog.FromRequest(r).Error().Err(err).Msg("create user")
		writeError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	if !s.issueCookie(w, r, u) {
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// handleLogin authenticates the user and sets the auth cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	u, err := s.store.UserByName(r.Context(), auth.NormalizeUsername(body.Username))
	if err != nil || !auth.CheckPassword(u.PasswordHash, body.Password) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", map[string]any{
			"message": auth.ErrInvalidCredentials.Error(),
		})
		return
	}
	if !s.issueCookie(w, r, u) {
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.setAuthCookie(w, "", time.Time{}, -1)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleMyRuns(w http.ResponseWriter, r *http.Request) {
	me := userFrom(r.Context())
	rows, err := s.store.RunsByUser(r.Context(), me.ID, queryLimit(r))
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("runs by user")
		writeError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// issueCookie signs a token for u and sets it; false means an error was written.
func (s *Server) issueCookie(w http.ResponseWriter, r *http.Request, u store.User) bool {
	tok, exp, err := s.tokens.Sign(u.ID, u.Username)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed", nil)
		return false
	}
	s.setAuthCookie(w, tok, exp, 0)
	return true
}

// setAuthCookie writes (or, with maxAge < 0, deletes) the auth cookie.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string, exp time.Time, maxAge int) {
	secure := s.cfg.Production()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
		MaxAge:   maxAge,
	})
}
