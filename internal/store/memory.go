// internal/store/memory.go
//
// In-memory Store. Concurrency-safe via RWMutex (concurrent reads allowed,
// writes exclusive). Values are copied in and out, so callers never share
// state with the store.

package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
)

type memory struct {
	mu    sync.RWMutex
	runs  map[string]Run  // keyed by Run.ID
	users map[string]User // keyed by User.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		runs:  make(map[string]Run),
		users: make(map[string]User),
	}
}

func (m *memory) SaveRun(ctx context.Context, r Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.ID] = r
	return nil
}

func (m *memory) GetRun(ctx context.Context, id string) (Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.runs[id]; ok {
		return r, nil
	}
	return Run{}, ErrNotFound
}

func (m *memory) FindRun(ctx context.Context, day int, digest string) (Run, error) {
	got := m.filter(func(r Run) bool { return r.Day == day && r.Digest == digest })
	if len(got) == 0 {
		return Run{}, ErrNotFound
	}
	slices.SortFunc(got, func(a, b Run) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return got[0], nil
}

func (m *memory) Leaderboard(ctx context.Context, day, limit int) ([]Run, error) {
	got := m.filter(func(r Run) bool { return r.Day == day })
	slices.SortFunc(got, func(a, b Run) int {
		return cmp.Or(cmp.Compare(a.ElapsedMs, b.ElapsedMs), a.CreatedAt.Compare(b.CreatedAt))
	})
	return truncate(got, limitOrDefault(limit)), nil
}

func (m *memory) RunsByUser(ctx context.Context, userID string, limit int) ([]Run, error) {
	got := m.filter(func(r Run) bool { return r.UserID == userID })
	slices.SortFunc(got, func(a, b Run) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return truncate(got, limitOrDefault(limit)), nil
}

func (m *memory) filter(keep func(Run) bool) []Run {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Run{}
	for _, r := range m.runs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func truncate(rs []Run, n int) []Run {
	if len(rs) > n {
		return rs[:n]
	}
	return rs
}

func (m *memory) CreateUser(ctx context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return ErrUserExists
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memory) UserByID(ctx context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return User{}, ErrNotFound
}

func (m *memory) UserByName(ctx context.Context, username string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}
