// internal/store/store.go
//
// Persistence for solve runs and user accounts.
// Two implementations share the Store interface:
//   - memory: maps behind an RWMutex; state is lost on restart.
//   - SQLite: database/sql over mattn/go-sqlite3, schema from sql/*.sql.
//
// Only run results are persisted. Parsed puzzle state never is.

package store

import (
	"context"
	"embed"
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("store: not found")
	ErrUserExists = errors.New("store: username taken")
)

// Migrations holds the SQL schema files, applied in lexical order.
//
//go:embed sql/*.sql
var Migrations embed.FS

// DefaultLimit caps list queries when the caller passes a non-positive limit.
const DefaultLimit = 20

// Run is the stored result of solving one input.
type Run struct {
	ID        string    `json:"runId"`
	Day       int       `json:"day"`
	Digest    string    `json:"digest"`
	Part1     uint64    `json:"part1"`
	Part2     uint64    `json:"part2"`
	ElapsedMs int64     `json:"elapsedMs"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store defines the persistence interface for runs and users.
// Lookups of missing rows return ErrNotFound.
type Store interface {
	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	// FindRun returns the earliest run for day with the given input digest.
	FindRun(ctx context.Context, day int, digest string) (Run, error)
	// Leaderboard lists the fastest runs for day.
	Leaderboard(ctx context.Context, day, limit int) ([]Run, error)
	// RunsByUser lists a user's runs, newest first.
	RunsByUser(ctx context.Context, userID string, limit int) ([]Run, error)

	// CreateUser fails with ErrUserExists if the username is taken,
	// compared case-insensitively.
	CreateUser(ctx context.Context, u User) error
	UserByID(ctx context.Context, id string) (User, error)
	UserByName(ctx context.Context, username string) (User, error)
}

func limitOrDefault(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	return n
}
