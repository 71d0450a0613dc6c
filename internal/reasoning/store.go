// Package reasoning keeps the audit log of AI classification decisions.
package reasoning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/pkg/kvstore"
	"eisenhower-task-management/pkg/log"
)

// MaxEntries caps the log; the oldest entries beyond it are discarded.
const MaxEntries = 50

var ErrEntryNotFound = errors.New("reasoning entry not found")

// Store is the reasoning log for a single user, newest first, at most one
// entry per task id.
type Store struct {
	mu     sync.Mutex
	l      log.Logger
	kv     kvstore.Store
	userID string

	entries []model.ReasoningEntry
}

// New creates an empty Store scoped to userID.
func New(l log.Logger, kv kvstore.Store, userID string) *Store {
	return &Store{
		l:      l,
		kv:     kv,
		userID: userID,
	}
}

func (s *Store) key() string {
	return "reasoning:" + s.userID
}

// Load reads the persisted log. A missing key yields an empty log.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.kv.Get(s.key())
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return nil
		}
		return fmt.Errorf("failed to read reasoning log: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.entries = nil
		return fmt.Errorf("corrupted reasoning data: %w", err)
	}
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
	return nil
}

// Append records a classification decision. An existing entry for the same
// task id is replaced so the log never holds stale reasoning for a task.
func (s *Store) Append(ctx context.Context, e model.ReasoningEntry) {
	s.mu.Lock()

	kept := make([]model.ReasoningEntry, 0, len(s.entries)+1)
	kept = append(kept, e)
	for _, old := range s.entries {
		if old.TaskID == e.TaskID {
			continue
		}
		kept = append(kept, old)
	}
	if len(kept) > MaxEntries {
		kept = kept[:MaxEntries]
	}
	s.entries = kept
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// List returns a copy of the log, newest first.
func (s *Store) List(ctx context.Context) []model.ReasoningEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ReasoningEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry for the given task id.
func (s *Store) Get(ctx context.Context, taskID string) (model.ReasoningEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.TaskID == taskID {
			return e, nil
		}
	}
	return model.ReasoningEntry{}, ErrEntryNotFound
}

// Delete removes the entry for the given task id, if any.
func (s *Store) Delete(ctx context.Context, taskID string) {
	s.mu.Lock()

	for i, e := range s.entries {
		if e.TaskID == taskID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persistLocked(ctx)
			break
		}
	}
	s.mu.Unlock()
}

// Clear drops the whole log.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.entries = nil
	s.persistLocked(ctx)
	s.mu.Unlock()
}

func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.entries)
	if err == nil {
		err = s.kv.Set(s.key(), data)
	}
	if err != nil {
		s.l.Errorf(ctx, "reasoning.persist: log for user %s may not persist: %v", s.userID, err)
	}
}
