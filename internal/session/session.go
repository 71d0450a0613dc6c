// Package session materializes and caches the per-user store bundle. Each
// user gets one Stores value for the lifetime of the cache entry, so every
// request for the same user shares the same in-memory state.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"eisenhower-task-management/internal/event"
	ideastore "eisenhower-task-management/internal/idea/store"
	"eisenhower-task-management/internal/reasoning"
	taskstore "eisenhower-task-management/internal/task/store"
	"eisenhower-task-management/pkg/kvstore"
	"eisenhower-task-management/pkg/log"
)

const (
	maxSessions = 1024
	sessionTTL  = 30 * time.Minute
)

// Stores is the full store bundle for one user.
type Stores struct {
	Tasks     *taskstore.Store
	Ideas     *ideastore.Store
	Reasoning *reasoning.Store
}

// Manager hands out the per-user store bundle, loading persisted state on
// first access and evicting idle sessions.
type Manager struct {
	mu    sync.Mutex
	l     log.Logger
	kv    kvstore.Store
	bus   *event.Bus
	cache *expirable.LRU[string, *Stores]
}

// NewManager creates a Manager backed by kv for persistence.
func NewManager(l log.Logger, kv kvstore.Store, bus *event.Bus) *Manager {
	return &Manager{
		l:     l,
		kv:    kv,
		bus:   bus,
		cache: expirable.NewLRU[string, *Stores](maxSessions, nil, sessionTTL),
	}
}

// Get returns the store bundle for userID, loading persisted state when the
// bundle is not cached. Corrupted persisted state is logged and the store
// starts empty rather than failing the request.
func (m *Manager) Get(ctx context.Context, userID string) *Stores {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.cache.Get(userID); ok {
		return st
	}

	st := &Stores{
		Tasks:     taskstore.New(m.l, m.kv, m.bus, userID),
		Ideas:     ideastore.New(m.l, m.kv, m.bus, userID),
		Reasoning: reasoning.New(m.l, m.kv, userID),
	}
	if err := st.Tasks.Load(ctx); err != nil {
		m.l.Errorf(ctx, "session.Get: loading tasks for user %s: %v, starting empty", userID, err)
	}
	if err := st.Ideas.Load(ctx); err != nil {
		m.l.Errorf(ctx, "session.Get: loading ideas for user %s: %v, starting empty", userID, err)
	}
	if err := st.Reasoning.Load(ctx); err != nil {
		m.l.Errorf(ctx, "session.Get: loading reasoning for user %s: %v, starting empty", userID, err)
	}
	m.cache.Add(userID, st)
	return st
}
