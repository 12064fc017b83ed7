package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSQLite opens a private in-memory database with the schema applied.
// One connection keeps every query on the same database.
func newTestSQLite(t *testing.T) Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	files, err := fs.Glob(Migrations, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, f := range files {
		b, err := Migrations.ReadFile(f)
		require.NoError(t, err)
		_, err = db.Exec(string(b))
		require.NoError(t, err, f)
	}
	return NewSQLite(db)
}

// eachStore runs fn against every implementation.
func eachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStore()) })
	t.Run("sqlite", func(t *testing.T) { fn(t, newTestSQLite(t)) })
}

var base = time.Date(2021, 12, 4, 5, 0, 0, 0, time.UTC)

func TestRunRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		want := Run{ID: "r1", Day: 6, Digest: "abc", Part1: 5934, Part2: 26984457539, ElapsedMs: 3, CreatedAt: base}
		require.NoError(t, s.SaveRun(ctx, want))

		got, err := s.GetRun(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Part2, got.Part2)
		assert.Equal(t, "", got.UserID)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))

		_, err = s.GetRun(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFindRunReturnsEarliest(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		require.NoError(t, s.SaveRun(ctx, Run{ID: "late", Day: 4, Digest: "d", CreatedAt: base.Add(time.Second)}))
		require.NoError(t, s.SaveRun(ctx, Run{ID: "early", Day: 4, Digest: "d", CreatedAt: base}))
		require.NoError(t, s.SaveRun(ctx, Run{ID: "other", Day: 5, Digest: "d", CreatedAt: base.Add(-time.Hour)}))

		r, err := s.FindRun(ctx, 4, "d")
		require.NoError(t, err)
		assert.Equal(t, "early", r.ID)

		_, err = s.FindRun(ctx, 4, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLeaderboard(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		for i, ms := range []int64{30, 10, 20, 10} {
			require.NoError(t, s.SaveRun(ctx, Run{
				ID: fmt.Sprintf("r%d", i), Day: 4, Digest: fmt.Sprint(i),
				ElapsedMs: ms, CreatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}
		require.NoError(t, s.SaveRun(ctx, Run{ID: "x", Day: 1, ElapsedMs: 0, CreatedAt: base}))

		rows, err := s.Leaderboard(ctx, 4, 3)
		require.NoError(t, err)
		var ids []string
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"r1", "r3", "r2"}, ids)

		rows, err = s.Leaderboard(ctx, 9, 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestUsers(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		u := User{ID: "u1", Username: "Alice", PasswordHash: "h", CreatedAt: base}
		require.NoError(t, s.CreateUser(ctx, u))
		assert.ErrorIs(t, s.CreateUser(ctx, User{ID: "u2", Username: "alice", PasswordHash: "h", CreatedAt: base}), ErrUserExists)

		got, err := s.UserByName(ctx, "ALICE")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.ID)
		assert.Equal(t, "Alice", got.Username)

		got, err = s.UserByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "h", got.PasswordHash)

		_, err = s.UserByID(ctx, "u2")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunsByUser(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		require.NoError(t, s.CreateUser(ctx, User{ID: "u1", Username: "bob", PasswordHash: "h", CreatedAt: base}))
		require.NoError(t, s.SaveRun(ctx, Run{ID: "a", Day: 1, UserID: "u1", CreatedAt: base}))
		require.NoError(t, s.SaveRun(ctx, Run{ID: "b", Day: 2, UserID: "u1", CreatedAt: base.Add(time.Minute)}))
		require.NoError(t, s.SaveRun(ctx, Run{ID: "c", Day: 2, CreatedAt: base.Add(time.Hour)}))

		rows, err := s.RunsByUser(ctx, "u1", 10)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "b", rows[0].ID)
		assert.Equal(t, "a", rows[1].ID)
	})
}
