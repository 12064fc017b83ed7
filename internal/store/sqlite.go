// internal/store/sqlite.go
//
// SQLite-backed Store. The caller opens the database and applies
// Migrations; this type only issues queries. Timestamps are stored as
// fixed-width UTC text so they sort lexically.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

type SQLite struct{ db *sql.DB }

func NewSQLite(db *sql.DB) *SQLite { return &SQLite{db: db} }

const runColumns = `id, day, digest, part1, part2, elapsed_ms, COALESCE(user_id,''), created_at`

func (s *SQLite) SaveRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO runs (id, day, digest, part1, part2, elapsed_ms, user_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Day, r.Digest, r.Part1, r.Part2, r.ElapsedMs, nullIfEmpty(r.UserID), formatTime(r.CreatedAt),
	)
	return err
}

func (s *SQLite) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id=?`, id)
	return scanRun(row)
}

func (s *SQLite) FindRun(ctx context.Context, day int, digest string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+runColumns+`
        FROM runs
        WHERE day=? AND digest=?
        ORDER BY created_at ASC
        LIMIT 1`, day, digest)
	return scanRun(row)
}

func (s *SQLite) Leaderboard(ctx context.Context, day, limit int) ([]Run, error) {
	return s.queryRuns(ctx, `
        SELECT `+runColumns+`
        FROM runs
        WHERE day=?
        ORDER BY elapsed_ms ASC, created_at ASC
        LIMIT ?`, day, limitOrDefault(limit))
}

func (s *SQLite) RunsByUser(ctx context.Context, userID string, limit int) ([]Run, error) {
	return s.queryRuns(ctx, `
        SELECT `+runColumns+`
        FROM runs
        WHERE user_id=?
        ORDER BY created_at DESC
        LIMIT ?`, userID, limitOrDefault(limit))
}

func (s *SQLite) queryRuns(ctx context.Context, q string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLite) CreateUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		u.ID, u.Username, u.PasswordHash, formatTime(u.CreatedAt))
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrUserExists
	}
	return err
}

func (s *SQLite) UserByID(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE id=?`, id)
	return scanUser(row)
}

func (s *SQLite) UserByName(ctx context.Context, username string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username=?`, strings.TrimSpace(username))
	return scanUser(row)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		r       Run
		created string
	)
	if err := row.Scan(&r.ID, &r.Day, &r.Digest, &r.Part1, &r.Part2, &r.ElapsedMs, &r.UserID, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrNotFound
		}
		return Run{}, err
	}
	r.CreatedAt = parseTime(created)
	return r, nil
}

func scanUser(row scanner) (User, error) {
	var (
		u       User
		created string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.CreatedAt = parseTime(created)
	return u, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses stored timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
