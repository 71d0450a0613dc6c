// Package store holds the authoritative in-memory task collection for one
// user session, mirrored to persistent storage on every mutation.
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
	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/internal/task"
	"eisenhower-task-management/pkg/kvstore"
	"eisenhower-task-management/pkg/log"
)

// Store is the Task Store for a single user. All mutation entry points
// funnel through its methods; the mutex is the sole serialization mechanism.
type Store struct {
	mu     sync.Mutex
	l      log.Logger
	kv     kvstore.Store
	bus    *event.Bus
	userID string

	tasks    []model.Task
	degraded bool // a persistence write failed this session
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
	return "tasks:" + s.userID
}

// Load reads the persisted collection and replaces the in-memory state via
// SetInitial. A missing key yields an empty collection; corrupted JSON is
// reported so the caller can decide to start empty.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.kv.Get(s.key())
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			s.SetInitial(ctx, nil)
			return nil
		}
		return fmt.Errorf("failed to read tasks: %w", err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return fmt.Errorf("corrupted task data: %w", err)
	}

	s.SetInitial(ctx, tasks)
	return nil
}

// SetInitial replaces the whole collection. Each record passes through
// migration; records missing required fields are rejected individually
// without aborting the batch. Returns the number of rejected records.
func (s *Store) SetInitial(ctx context.Context, tasks []model.Task) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	migrated := make([]model.Task, 0, len(tasks))
	rejected := 0
	for _, t := range tasks {
		m, err := migrateTask(t)
		if err != nil {
			rejected++
			s.l.Warnf(ctx, "store.SetInitial: rejecting task %q: %v", t.ID, err)
			continue
		}
		migrated = append(migrated, m)
	}
	sortTasks(migrated)
	s.tasks = migrated
	return rejected
}

// List returns a copy of the collection sorted by quadrant then order.
func (s *Store) List(ctx context.Context) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	sortTasks(out)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(ctx context.Context, id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, task.ErrTaskNotFound
}

// Add inserts a new task at the end of its quadrant: order is one past the
// current maximum, or 0 for an empty quadrant.
func (s *Store) Add(ctx context.Context, opt AddOptions) (model.Task, error) {
	s.mu.Lock()

	status := opt.Status
	if status == "" {
		status = model.StatusActive
	}

	now := time.Now()
	t := model.Task{
		ID:              uuid.NewString(),
		Text:            opt.Text,
		Quadrant:        opt.Quadrant,
		TaskType:        opt.TaskType,
		Status:          status,
		NeedsReflection: opt.NeedsReflection,
		Order:           s.nextOrderLocked(opt.Quadrant),
		Description:     opt.Description,
		DueDate:         opt.DueDate,
		GoalID:          opt.GoalID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if status == model.StatusCompleted {
		ts := now
		t.CompletedAt = &ts
	}

	s.tasks = append(s.tasks, t)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.bus.Publish(event.Event{Type: event.TypeTaskCreated, UserID: s.userID, TaskID: t.ID})
	return t, nil
}

// nextOrderLocked returns max(order in quadrant)+1, or 0 when empty.
func (s *Store) nextOrderLocked(q model.Quadrant) int {
	next := 0
	for _, t := range s.tasks {
		if t.Quadrant == q && t.Order >= next {
			next = t.Order + 1
		}
	}
	return next
}

// Update merges the non-nil patch fields into the task and refreshes
// updatedAt. A patched status keeps the completedAt invariant.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (model.Task, error) {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Task{}, task.ErrTaskNotFound
	}

	t := &s.tasks[idx]
	now := time.Now()
	var changed []string

	if patch.Text != nil && *patch.Text != t.Text {
		t.Text = *patch.Text
		changed = append(changed, "text")
	}
	if patch.Quadrant != nil && *patch.Quadrant != t.Quadrant {
		t.Quadrant = *patch.Quadrant
		t.Order = s.nextOrderLocked(*patch.Quadrant)
		changed = append(changed, "quadrant")
	}
	if patch.TaskType != nil && *patch.TaskType != t.TaskType {
		t.TaskType = *patch.TaskType
		changed = append(changed, "task_type")
	}
	if patch.Status != nil && *patch.Status != t.Status {
		t.Status = *patch.Status
		if t.Status == model.StatusCompleted {
			ts := now
			t.CompletedAt = &ts
		} else {
			t.CompletedAt = nil
		}
		changed = append(changed, "status")
	}
	if patch.NeedsReflection != nil && *patch.NeedsReflection != t.NeedsReflection {
		t.NeedsReflection = *patch.NeedsReflection
		changed = append(changed, "needs_reflection")
	}
	if patch.Description != nil && *patch.Description != t.Description {
		t.Description = *patch.Description
		changed = append(changed, "description")
	}
	if patch.DueDate != nil && *patch.DueDate != t.DueDate {
		t.DueDate = *patch.DueDate
		changed = append(changed, "due_date")
	}
	if patch.GoalID != nil && *patch.GoalID != t.GoalID {
		t.GoalID = *patch.GoalID
		changed = append(changed, "goal_id")
	}
	if patch.Reflection != nil {
		t.Reflection = patch.Reflection
		changed = append(changed, "reflection")
	}

	t.UpdatedAt = now
	updated := *t
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.bus.Publish(event.Event{
		Type:   event.TypeTaskUpdated,
		UserID: s.userID,
		TaskID: updated.ID,
		Fields: changed,
	})
	return updated, nil
}

// Delete removes the task.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return task.ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.bus.Publish(event.Event{Type: event.TypeTaskDeleted, UserID: s.userID, TaskID: id})
	return nil
}

// Toggle flips the task between active and completed, setting or clearing
// completedAt. Completing a q1 task additionally broadcasts a celebration
// signal; that is a notification, not a state invariant.
func (s *Store) Toggle(ctx context.Context, id string) (model.Task, error) {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Task{}, task.ErrTaskNotFound
	}

	t := &s.tasks[idx]
	now := time.Now()
	if t.Status == model.StatusCompleted {
		t.Status = model.StatusActive
		t.CompletedAt = nil
	} else {
		t.Status = model.StatusCompleted
		ts := now
		t.CompletedAt = &ts
	}
	t.UpdatedAt = now
	updated := *t
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.bus.Publish(event.Event{
		Type:   event.TypeTaskUpdated,
		UserID: s.userID,
		TaskID: updated.ID,
		Fields: []string{"status", "completed_at"},
	})
	if updated.Quadrant == model.QuadrantQ1 && updated.Status == model.StatusCompleted {
		s.bus.Publish(event.Event{Type: event.TypeQ1TaskCompleted, UserID: s.userID, TaskID: updated.ID})
	}
	return updated, nil
}

// Reorder moves the task at sourceIndex to destinationIndex within the
// quadrant's order-sorted list, then renumbers the quadrant 0..n-1.
// Out-of-range indices are rejected without mutating state.
func (s *Store) Reorder(ctx context.Context, q model.Quadrant, sourceIndex, destinationIndex int) error {
	if !q.Valid() {
		return task.ErrInvalidQuadrant
	}

	s.mu.Lock()

	var inQuadrant []*model.Task
	for i := range s.tasks {
		if s.tasks[i].Quadrant == q {
			inQuadrant = append(inQuadrant, &s.tasks[i])
		}
	}
	sortTaskPtrs(inQuadrant)

	n := len(inQuadrant)
	if sourceIndex < 0 || sourceIndex >= n || destinationIndex < 0 || destinationIndex >= n {
		s.mu.Unlock()
		return task.ErrInvalidIndex
	}

	moved := inQuadrant[sourceIndex]
	inQuadrant = append(inQuadrant[:sourceIndex], inQuadrant[sourceIndex+1:]...)
	inQuadrant = append(inQuadrant[:destinationIndex], append([]*model.Task{moved}, inQuadrant[destinationIndex:]...)...)

	now := time.Now()
	for i, t := range inQuadrant {
		t.Order = i
		t.UpdatedAt = now
	}
	movedID := moved.ID
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.bus.Publish(event.Event{
		Type:   event.TypeTaskUpdated,
		UserID: s.userID,
		TaskID: movedID,
		Fields: []string{"order"},
	})
	return nil
}

// PersistenceDegraded reports whether any persistence write failed this
// session. In-memory state remains authoritative regardless.
func (s *Store) PersistenceDegraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *Store) indexLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked mirrors the full collection to the kv store. Failures are
// logged and flagged but never roll back the in-memory mutation.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.tasks)
	if err == nil {
		err = s.kv.Set(s.key(), data)
	}
	if err != nil {
		s.l.Errorf(ctx, "store.persist: tasks for user %s may not persist: %v", s.userID, err)
		if !s.degraded {
			s.degraded = true
			go s.bus.Publish(event.Event{Type: event.TypePersistenceDegraded, UserID: s.userID})
		}
	}
}

func sortTaskPtrs(tasks []*model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Order < tasks[j].Order
	})
}
