package usecase

import (
	"context"

	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/internal/reasoning"
	"eisenhower-task-management/internal/session"
)

type implUseCase struct {
	sessions *session.Manager
}

var _ reasoning.UseCase = (*implUseCase)(nil)

// New creates a new reasoning UseCase.
func New(sessions *session.Manager) *implUseCase {
	return &implUseCase{sessions: sessions}
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.ReasoningEntry, error) {
	st := uc.sessions.Get(ctx, sc.UserID)
	return st.Reasoning.List(ctx), nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, taskID string) error {
	st := uc.sessions.Get(ctx, sc.UserID)
	st.Reasoning.Delete(ctx, taskID)
	return nil
}

func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) error {
	st := uc.sessions.Get(ctx, sc.UserID)
	st.Reasoning.Clear(ctx)
	return nil
}
