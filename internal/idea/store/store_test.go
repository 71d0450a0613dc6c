package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/idea"
	"eisenhower-task-management/internal/model"
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

type mockKV struct {
	data map[string][]byte
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
	m.data[key] = value
	return nil
}

func (m *mockKV) Remove(key string) error {
	delete(m.data, key)
	return nil
}

func newTestStore() *Store {
	return New(&mockLogger{}, newMockKV(), event.NewBus(), "u1")
}

func TestAddNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	s.Add(ctx, AddOptions{Text: "first"})
	s.Add(ctx, AddOptions{Text: "second"})
	s.Add(ctx, AddOptions{Text: "third"})

	got := s.List(ctx)
	want := []string{"third", "second", "first"}
	for i, text := range want {
		if got[i].Text != text {
			t.Errorf("position %d: expected %q got %q", i, text, got[i].Text)
		}
	}
}

func TestSetInitial(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	old := time.Now().Add(-time.Hour)
	recent := time.Now()
	rejected := s.SetInitial(ctx, []model.Idea{
		{ID: "a", Text: "older", CreatedAt: old},
		{ID: "b", Text: "", CreatedAt: recent},
		{ID: "c", Text: "newer", CreatedAt: recent},
	})

	if rejected != 1 {
		t.Errorf("expected 1 rejected record, got %d", rejected)
	}
	got := s.List(ctx)
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
		t.Errorf("expected newest-first c,a; got %+v", got)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	created, _ := s.Add(ctx, AddOptions{Text: "raw thought", ConnectedToPriority: true})

	text := "refined thought"
	updated, err := s.Update(ctx, created.ID, Patch{Text: &text})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Text != "refined thought" {
		t.Errorf("text not updated: %q", updated.Text)
	}
	if !updated.ConnectedToPriority {
		t.Error("partial patch clobbered untouched field")
	}

	if _, err := s.Update(ctx, "ghost", Patch{Text: &text}); !errors.Is(err, idea.ErrIdeaNotFound) {
		t.Errorf("expected ErrIdeaNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	created, _ := s.Add(ctx, AddOptions{Text: "promote me", TaskType: model.TaskTypeBusiness})

	removed, err := s.Remove(ctx, created.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.Text != "promote me" || removed.TaskType != model.TaskTypeBusiness {
		t.Errorf("unexpected removed idea: %+v", removed)
	}
	if len(s.List(ctx)) != 0 {
		t.Error("removed idea still listed")
	}

	if _, err := s.Remove(ctx, created.ID); !errors.Is(err, idea.ErrIdeaNotFound) {
		t.Errorf("second Remove: expected ErrIdeaNotFound, got %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	bus := event.NewBus()

	s1 := New(&mockLogger{}, kv, bus, "u1")
	s1.Add(ctx, AddOptions{Text: "persisted"})

	s2 := New(&mockLogger{}, kv, bus, "u1")
	if err := s2.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := s2.List(ctx)
	if len(got) != 1 || got[0].Text != "persisted" {
		t.Errorf("unexpected loaded state: %+v", got)
	}
}
