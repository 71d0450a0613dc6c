package session

import (
	"context"
	"testing"

	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/model"
	taskstore "eisenhower-task-management/internal/task/store"
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

func TestGetReturnsSameBundle(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(&mockLogger{}, newMockKV(), event.NewBus())

	a := mgr.Get(ctx, "u1")
	b := mgr.Get(ctx, "u1")
	if a != b {
		t.Error("expected the same bundle for repeated access")
	}

	other := mgr.Get(ctx, "u2")
	if other == a {
		t.Error("different users must not share a bundle")
	}
}

func TestGetLoadsPersistedState(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	bus := event.NewBus()

	seed := taskstore.New(&mockLogger{}, kv, bus, "u1")
	seed.Add(ctx, taskstore.AddOptions{Text: "persisted", Quadrant: model.QuadrantQ1})

	mgr := NewManager(&mockLogger{}, kv, bus)
	st := mgr.Get(ctx, "u1")
	tasks := st.Tasks.List(ctx)
	if len(tasks) != 1 || tasks[0].Text != "persisted" {
		t.Errorf("expected persisted task to be loaded, got %+v", tasks)
	}
}

func TestGetSurvivesCorruptedState(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	kv.data["tasks:u1"] = []byte("{not json")

	mgr := NewManager(&mockLogger{}, kv, event.NewBus())
	st := mgr.Get(ctx, "u1")
	if st == nil {
		t.Fatal("corrupted state must not prevent session creation")
	}
	if len(st.Tasks.List(ctx)) != 0 {
		t.Error("expected empty store after corrupted load")
	}
}
