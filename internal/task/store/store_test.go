package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/internal/task"
	"eisenhower-task-management/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockKV records writes and can be told to fail.
type mockKV struct {
	data map[string][]byte
	fail bool
	sets int
}

func newMockKV() *mockKV { return &mockKV{data: map[string][]byte{}} }

func (m *mockKV) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, kvstore.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKV) Set(key string, value []byte) error {
	if m.fail {
		return errors.New("quota exceeded")
	}
	m.sets++
	m.data[key] = value
	return nil
}

func (m *mockKV) Remove(key string) error {
	delete(m.data, key)
	return nil
}

func newTestStore(kv *mockKV) *Store {
	return New(&mockLogger{}, kv, event.NewBus(), "u1")
}

func TestAddOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newMockKV())

	t1, _ := s.Add(ctx, AddOptions{Text: "a", Quadrant: model.QuadrantQ2})
	t2, _ := s.Add(ctx, AddOptions{Text: "b", Quadrant: model.QuadrantQ2})
	t3, _ := s.Add(ctx, AddOptions{Text: "c", Quadrant: model.QuadrantQ1})

	if t1.Order != 0 || t2.Order != 1 {
		t.Errorf("expected strictly increasing order in q2, got %d then %d", t1.Order, t2.Order)
	}
	if t3.Order != 0 {
		t.Errorf("first task in empty quadrant must get order 0, got %d", t3.Order)
	}
}

func TestReorder(t *testing.T) {
	ctx := context.Background()

	setup := func() (*Store, []string) {
		s := newTestStore(newMockKV())
		var ids []string
		for _, text := range []string{"a", "b", "c", "d"} {
			created, _ := s.Add(ctx, AddOptions{Text: text, Quadrant: model.QuadrantQ3})
			ids = append(ids, created.ID)
		}
		return s, ids
	}

	t.Run("moves item and renumbers 0..n-1", func(t *testing.T) {
		s, ids := setup()

		if err := s.Reorder(ctx, model.QuadrantQ3, 0, 2); err != nil {
			t.Fatalf("Reorder: %v", err)
		}

		got := s.List(ctx)
		wantIDs := []string{ids[1], ids[2], ids[0], ids[3]}
		for i, want := range wantIDs {
			if got[i].ID != want {
				t.Errorf("position %d: expected %s got %s", i, want, got[i].ID)
			}
			if got[i].Order != i {
				t.Errorf("position %d: expected contiguous order %d got %d", i, i, got[i].Order)
			}
		}
	})

	t.Run("rejects out-of-range indices without mutating", func(t *testing.T) {
		s, _ := setup()
		before := s.List(ctx)

		for _, pair := range [][2]int{{-1, 0}, {0, 4}, {4, 0}, {0, -1}} {
			if err := s.Reorder(ctx, model.QuadrantQ3, pair[0], pair[1]); !errors.Is(err, task.ErrInvalidIndex) {
				t.Errorf("Reorder(%d,%d): expected ErrInvalidIndex, got %v", pair[0], pair[1], err)
			}
		}

		after := s.List(ctx)
		for i := range before {
			if before[i].ID != after[i].ID || before[i].Order != after[i].Order {
				t.Fatal("rejected reorder mutated state")
			}
		}
	})

	t.Run("only touches the target quadrant", func(t *testing.T) {
		s, _ := setup()
		other, _ := s.Add(ctx, AddOptions{Text: "x", Quadrant: model.QuadrantQ1})

		s.Reorder(ctx, model.QuadrantQ3, 3, 0)

		got, _ := s.Get(ctx, other.ID)
		if got.Order != other.Order {
			t.Error("reorder in q3 changed a q1 task")
		}
	})
}

func TestToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newMockKV())

	created, _ := s.Add(ctx, AddOptions{Text: "go to gym", Quadrant: model.QuadrantQ4})

	completed, err := s.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if completed.Status != model.StatusCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}
	if completed.CompletedAt == nil {
		t.Fatal("completedAt must be set on completion")
	}
	if !completed.UpdatedAt.After(created.UpdatedAt) && !completed.UpdatedAt.Equal(created.UpdatedAt) {
		t.Error("updatedAt must be refreshed")
	}

	reverted, err := s.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if reverted.Status != model.StatusActive {
		t.Errorf("expected active after round-trip, got %s", reverted.Status)
	}
	if reverted.CompletedAt != nil {
		t.Error("completedAt must be cleared when reverted to active")
	}
}

func TestQ1CompletionSignal(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus()
	s := New(&mockLogger{}, newMockKV(), bus, "u1")

	var celebrations []string
	bus.Subscribe(func(e event.Event) {
		if e.Type == event.TypeQ1TaskCompleted {
			celebrations = append(celebrations, e.TaskID)
		}
	})

	q1Task, _ := s.Add(ctx, AddOptions{Text: "urgent", Quadrant: model.QuadrantQ1})
	q4Task, _ := s.Add(ctx, AddOptions{Text: "later", Quadrant: model.QuadrantQ4})

	s.Toggle(ctx, q4Task.ID)
	if len(celebrations) != 0 {
		t.Error("q4 completion must not celebrate")
	}

	s.Toggle(ctx, q1Task.ID)
	if len(celebrations) != 1 || celebrations[0] != q1Task.ID {
		t.Errorf("expected one celebration for %s, got %v", q1Task.ID, celebrations)
	}

	// reverting and re-completing signals again; the signal is per occurrence
	s.Toggle(ctx, q1Task.ID)
	s.Toggle(ctx, q1Task.ID)
	if len(celebrations) != 2 {
		t.Errorf("expected a second celebration, got %d", len(celebrations))
	}
}

func TestNotFoundOperations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newMockKV())
	s.Add(ctx, AddOptions{Text: "keep me", Quadrant: model.QuadrantQ2})

	text := "nope"
	if _, err := s.Update(ctx, "ghost", Patch{Text: &text}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Update: expected ErrTaskNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "ghost"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Delete: expected ErrTaskNotFound, got %v", err)
	}
	if _, err := s.Toggle(ctx, "ghost"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Toggle: expected ErrTaskNotFound, got %v", err)
	}

	if got := s.List(ctx); len(got) != 1 {
		t.Errorf("not-found operations must leave the collection unchanged, got %d tasks", len(got))
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newMockKV())

	created, _ := s.Add(ctx, AddOptions{Text: "write report", Quadrant: model.QuadrantQ4, Description: "for friday"})

	q2 := model.QuadrantQ2
	work := model.TaskTypeWork
	updated, err := s.Update(ctx, created.ID, Patch{Quadrant: &q2, TaskType: &work})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Quadrant != model.QuadrantQ2 || updated.TaskType != model.TaskTypeWork {
		t.Errorf("patched fields not applied: %+v", updated)
	}
	if updated.Text != "write report" || updated.Description != "for friday" {
		t.Error("partial patch clobbered untouched fields")
	}
	if updated.Status != model.StatusActive {
		t.Error("status must be untouched")
	}
}

func TestSetInitialMigration(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newMockKV())

	input := []model.Task{
		{ID: "a", Text: "first", Quadrant: model.QuadrantQ1},
		{Text: "missing id", Quadrant: model.QuadrantQ1},
		{ID: "b", Text: "", Quadrant: model.QuadrantQ2},
		{ID: "c", Text: "third", Quadrant: ""},
		{ID: "d", Text: "fourth", Quadrant: model.QuadrantQ1, Order: 1},
	}

	rejected := s.SetInitial(ctx, input)
	if rejected != 3 {
		t.Errorf("expected 3 rejected records, got %d", rejected)
	}

	got := s.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving tasks, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "d" {
		t.Errorf("expected relative order a,d; got %s,%s", got[0].ID, got[1].ID)
	}
	if got[0].Status != model.StatusActive {
		t.Errorf("missing status must default to active, got %s", got[0].Status)
	}
	if got[0].CreatedAt.IsZero() || got[0].UpdatedAt.IsZero() {
		t.Error("missing timestamps must be defaulted")
	}
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("every mutation mirrors the collection", func(t *testing.T) {
		kv := newMockKV()
		s := newTestStore(kv)

		created, _ := s.Add(ctx, AddOptions{Text: "a", Quadrant: model.QuadrantQ4})
		s.Toggle(ctx, created.ID)
		s.Delete(ctx, created.ID)

		if kv.sets != 3 {
			t.Errorf("expected 3 persistence writes, got %d", kv.sets)
		}
		var stored []model.Task
		json.Unmarshal(kv.data["tasks:u1"], &stored)
		if len(stored) != 0 {
			t.Errorf("final snapshot should be empty, got %d", len(stored))
		}
	})

	t.Run("persistence failure keeps in-memory state", func(t *testing.T) {
		kv := newMockKV()
		kv.fail = true
		s := newTestStore(kv)

		created, err := s.Add(ctx, AddOptions{Text: "a", Quadrant: model.QuadrantQ4})
		if err != nil {
			t.Fatalf("Add must not fail on persistence error: %v", err)
		}
		if _, err := s.Get(ctx, created.ID); err != nil {
			t.Error("in-memory state must survive persistence failure")
		}
		if !s.PersistenceDegraded() {
			t.Error("expected degraded persistence flag")
		}
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key yields empty collection", func(t *testing.T) {
		s := newTestStore(newMockKV())
		if err := s.Load(ctx); err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(s.List(ctx)) != 0 {
			t.Error("expected empty collection")
		}
	})

	t.Run("round-trips persisted tasks", func(t *testing.T) {
		kv := newMockKV()
		s1 := newTestStore(kv)
		s1.Add(ctx, AddOptions{Text: "a", Quadrant: model.QuadrantQ2})

		s2 := newTestStore(kv)
		if err := s2.Load(ctx); err != nil {
			t.Fatalf("Load: %v", err)
		}
		got := s2.List(ctx)
		if len(got) != 1 || got[0].Text != "a" {
			t.Errorf("unexpected loaded state: %+v", got)
		}
	})

	t.Run("corrupted payload reported", func(t *testing.T) {
		kv := newMockKV()
		kv.data["tasks:u1"] = []byte("{not json")
		s := newTestStore(kv)
		if err := s.Load(ctx); err == nil {
			t.Error("expected error for corrupted payload")
		}
	})
}
