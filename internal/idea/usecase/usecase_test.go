package usecase

import (
	"context"
	"errors"
	"testing"

	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/idea"
	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/internal/session"
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

func newTestUseCase() *implUseCase {
	bus := event.NewBus()
	return New(&mockLogger{}, session.NewManager(&mockLogger{}, newMockKV(), bus), bus)
}

var sc = model.Scope{UserID: "u1"}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	if _, err := uc.Create(ctx, sc, idea.CreateInput{Text: "  "}); !errors.Is(err, idea.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}

	uc.Create(ctx, sc, idea.CreateInput{Text: "learn woodworking"})
	uc.Create(ctx, sc, idea.CreateInput{Text: "start a podcast", ConnectedToPriority: true})

	out, err := uc.List(ctx, sc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Ideas) != 2 || out.Ideas[0].Text != "start a podcast" {
		t.Errorf("expected newest first, got %+v", out.Ideas)
	}
}

func TestConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the idea into the chosen quadrant", func(t *testing.T) {
		uc := newTestUseCase()
		created, _ := uc.Create(ctx, sc, idea.CreateInput{Text: "write a book", TaskType: model.TaskTypePersonal})

		out, err := uc.Convert(ctx, sc, idea.ConvertInput{ID: created.Idea.ID, Quadrant: model.QuadrantQ2})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if out.Task.Text != "write a book" || out.Task.Quadrant != model.QuadrantQ2 {
			t.Errorf("unexpected task: %+v", out.Task)
		}
		if out.Task.NeedsReflection {
			t.Error("q2 conversion must not flag reflection")
		}

		ideas, _ := uc.List(ctx, sc)
		if len(ideas.Ideas) != 0 {
			t.Error("converted idea must leave the bank")
		}
	})

	t.Run("defaults to the provisional quadrant", func(t *testing.T) {
		uc := newTestUseCase()
		created, _ := uc.Create(ctx, sc, idea.CreateInput{Text: "tidy the garage"})

		out, err := uc.Convert(ctx, sc, idea.ConvertInput{ID: created.Idea.ID})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if out.Task.Quadrant != model.DefaultQuadrant {
			t.Errorf("expected %s, got %s", model.DefaultQuadrant, out.Task.Quadrant)
		}
		if !out.Task.NeedsReflection {
			t.Error("q4 conversion must flag reflection")
		}
	})

	t.Run("idea task type does not leak onto the task", func(t *testing.T) {
		uc := newTestUseCase()
		created, _ := uc.Create(ctx, sc, idea.CreateInput{Text: "from the bank", TaskType: model.TaskTypeIdea})

		out, _ := uc.Convert(ctx, sc, idea.ConvertInput{ID: created.Idea.ID, Quadrant: model.QuadrantQ1})
		if out.Task.TaskType != model.TaskTypePersonal {
			t.Errorf("expected personal, got %s", out.Task.TaskType)
		}
	})

	t.Run("unknown idea", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Convert(ctx, sc, idea.ConvertInput{ID: "ghost"}); !errors.Is(err, idea.ErrIdeaNotFound) {
			t.Errorf("expected ErrIdeaNotFound, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	created, _ := uc.Create(ctx, sc, idea.CreateInput{Text: "rough thought"})

	text := "sharper thought"
	out, err := uc.Update(ctx, sc, idea.UpdateInput{ID: created.Idea.ID, Text: &text})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Idea.Text != "sharper thought" {
		t.Errorf("text not updated: %q", out.Idea.Text)
	}

	empty := " "
	if _, err := uc.Update(ctx, sc, idea.UpdateInput{ID: created.Idea.ID, Text: &empty}); !errors.Is(err, idea.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}
