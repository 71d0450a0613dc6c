package usecase

import (
	"context"
	"strings"

	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/idea"
	ideastore "eisenhower-task-management/internal/idea/store"
	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/internal/session"
	taskstore "eisenhower-task-management/internal/task/store"
	"eisenhower-task-management/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	sessions *session.Manager
	bus      *event.Bus
}

var _ idea.UseCase = (*implUseCase)(nil)

// New creates a new idea UseCase.
func New(l log.Logger, sessions *session.Manager, bus *event.Bus) *implUseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		bus:      bus,
	}
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input idea.CreateInput) (idea.CreateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return idea.CreateOutput{}, idea.ErrEmptyText
	}

	st := uc.sessions.Get(ctx, sc.UserID)
	created, err := st.Ideas.Add(ctx, ideastore.AddOptions{
		Text:                text,
		TaskType:            input.TaskType,
		ConnectedToPriority: input.ConnectedToPriority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "idea.usecase.Create: %v", err)
		return idea.CreateOutput{}, err
	}

	return idea.CreateOutput{Idea: created}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (idea.ListOutput, error) {
	st := uc.sessions.Get(ctx, sc.UserID)
	return idea.ListOutput{Ideas: st.Ideas.List(ctx)}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input idea.UpdateInput) (idea.UpdateOutput, error) {
	if input.Text != nil && strings.TrimSpace(*input.Text) == "" {
		return idea.UpdateOutput{}, idea.ErrEmptyText
	}

	st := uc.sessions.Get(ctx, sc.UserID)
	updated, err := st.Ideas.Update(ctx, input.ID, ideastore.Patch{
		Text:                input.Text,
		ConnectedToPriority: input.ConnectedToPriority,
	})
	if err != nil {
		return idea.UpdateOutput{}, err
	}

	return idea.UpdateOutput{Idea: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	st := uc.sessions.Get(ctx, sc.UserID)
	return st.Ideas.Delete(ctx, id)
}

// Convert promotes an idea into the task collection. The idea leaves the
// bank first; if the task insert then fails the idea is restored, so the
// entry is never in both places and never silently lost.
func (uc *implUseCase) Convert(ctx context.Context, sc model.Scope, input idea.ConvertInput) (idea.ConvertOutput, error) {
	quadrant := input.Quadrant
	if quadrant == "" {
		quadrant = model.DefaultQuadrant
	}
	if !quadrant.Valid() {
		return idea.ConvertOutput{}, idea.ErrInvalidQuadrant
	}

	st := uc.sessions.Get(ctx, sc.UserID)
	removed, err := st.Ideas.Remove(ctx, input.ID)
	if err != nil {
		return idea.ConvertOutput{}, err
	}

	taskType := removed.TaskType
	if taskType == model.TaskTypeIdea {
		taskType = model.TaskTypePersonal
	}

	created, err := st.Tasks.Add(ctx, taskstore.AddOptions{
		Text:            removed.Text,
		Quadrant:        quadrant,
		TaskType:        taskType,
		NeedsReflection: quadrant == model.QuadrantQ3 || quadrant == model.QuadrantQ4,
	})
	if err != nil {
		uc.l.Errorf(ctx, "idea.usecase.Convert: restoring idea %s after failed insert: %v", removed.ID, err)
		st.Ideas.Add(ctx, ideastore.AddOptions{
			Text:                removed.Text,
			TaskType:            removed.TaskType,
			ConnectedToPriority: removed.ConnectedToPriority,
		})
		return idea.ConvertOutput{}, err
	}

	return idea.ConvertOutput{Task: created}, nil
}
