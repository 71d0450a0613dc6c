// Package store holds the Ideas Bank for one user session, newest entries
// first, mirrored to persistent storage on every mutation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/idea"
	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/pkg/kvstore"
	"eisenhower-task-management/pkg/log"
)

// AddOptions holds parameters for inserting a new Idea.
type AddOptions struct {
	Text                string
	TaskType            model.TaskType
	ConnectedToPriority bool
}

// Patch is a partial-field update for an idea.
type Patch struct {
	Text                *string
	ConnectedToPriority *bool
}

// Store is the Ideas Bank for a single user.
type Store struct {
	mu     sync.Mutex
	l      log.Logger
	kv     kvstore.Store
	bus    *event.Bus
	userID string

	ideas []model.Idea
}

// New creates an empty Store scoped to userID.
func New(l log.Logger, kv kvstore.Store, bus *event.Bus, userID string) *Store {
	return &Store{
		l:      l,
		kv:     kv,
		bus:    bus,
		userID: userID,
	}
}

func (s *Store) key() string {
	return "ideas:" + s.userID
}

// Load reads the persisted bank. A missing key yields an empty bank.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.kv.Get(s.key())
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			s.SetInitial(ctx, nil)
			return nil
		}
		return fmt.Errorf("failed to read ideas: %w", err)
	}

	var ideas []model.Idea
	if err := json.Unmarshal(data, &ideas); err != nil {
		return fmt.Errorf("corrupted idea data: %w", err)
	}

	s.SetInitial(ctx, ideas)
	return nil
}

// SetInitial replaces the bank. Records missing required fields are rejected
// individually; the rest are kept newest first. Returns the rejected count.
func (s *Store) SetInitial(ctx context.Context, ideas []model.Idea) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]model.Idea, 0, len(ideas))
	rejected := 0
	for _, i := range ideas {
		if err := model.ValidateStruct(i); err != nil {
			rejected++
			s.l.Warnf(ctx, "idea.SetInitial: rejecting idea %q: %v", i.ID, err)
			continue
		}
		if i.CreatedAt.IsZero() {
			i.CreatedAt = time.Now()
		}
		if i.UpdatedAt.IsZero() {
			i.UpdatedAt = i.CreatedAt
		}
		kept = append(kept, i)
	}
	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].CreatedAt.After(kept[b].CreatedAt)
	})
	s.ideas = kept
	return rejected
}

// List returns a copy of the bank, newest first.
func (s *Store) List(ctx context.Context) []model.Idea {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Idea, len(s.ideas))
	copy(out, s.ideas)
	return out
}

// Get returns the idea with the given id.
func (s *Store) Get(ctx context.Context, id string) (model.Idea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, i := range s.ideas {
		if i.ID == id {
			return i, nil
		}
	}
	return model.Idea{}, idea.ErrIdeaNotFound
}

// Add prepends a new idea so the bank stays newest first.
func (s *Store) Add(ctx context.Context, opt AddOptions) (model.Idea, error) {
	s.mu.Lock()

	now := time.Now()
	i := model.Idea{
		ID:                  uuid.NewString(),
		Text:                opt.Text,
		TaskType:            opt.TaskType,
		ConnectedToPriority: opt.ConnectedToPriority,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	s.ideas = append([]model.Idea{i}, s.ideas...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return i, nil
}

// Update merges the non-nil patch fields into the idea.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (model.Idea, error) {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Idea{}, idea.ErrIdeaNotFound
	}

	i := &s.ideas[idx]
	if patch.Text != nil {
		i.Text = *patch.Text
	}
	if patch.ConnectedToPriority != nil {
		i.ConnectedToPriority = *patch.ConnectedToPriority
	}
	i.UpdatedAt = time.Now()
	updated := *i
	s.persistLocked(ctx)
	s.mu.Unlock()

	return updated, nil
}

// Delete removes the idea.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return idea.ErrIdeaNotFound
	}

	s.ideas = append(s.ideas[:idx], s.ideas[idx+1:]...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return nil
}

// Remove deletes the idea and returns it, for promotion back into the task
// collection. Removal and retrieval happen under one lock acquisition so a
// concurrent delete cannot race the conversion.
func (s *Store) Remove(ctx context.Context, id string) (model.Idea, error) {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Idea{}, idea.ErrIdeaNotFound
	}

	removed := s.ideas[idx]
	s.ideas = append(s.ideas[:idx], s.ideas[idx+1:]...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return removed, nil
}

func (s *Store) indexLocked(id string) int {
	for i, it := range s.ideas {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.ideas)
	if err == nil {
		err = s.kv.Set(s.key(), data)
	}
	if err != nil {
		s.l.Errorf(ctx, "idea.persist: ideas for user %s may not persist: %v", s.userID, err)
	}
}
