package usecase

import (
	"context"
	"strings"

	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/internal/task"
	"eisenhower-task-management/internal/task/store"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateOutput{}, task.ErrEmptyText
	}
	if !input.Quadrant.Valid() {
		return task.CreateOutput{}, task.ErrInvalidQuadrant
	}

	st := uc.sessions.Get(ctx, sc.UserID)

	// q3/q4 placements carry a standing prompt to justify the choice.
	needsReflection := input.NeedsReflection ||
		input.Quadrant == model.QuadrantQ3 || input.Quadrant == model.QuadrantQ4

	created, err := st.Tasks.Add(ctx, store.AddOptions{
		Text:            text,
		Quadrant:        input.Quadrant,
		TaskType:        input.TaskType,
		NeedsReflection: needsReflection,
		Description:     input.Description,
		DueDate:         input.DueDate,
		GoalID:          input.GoalID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: created}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	st := uc.sessions.Get(ctx, sc.UserID)
	return task.ListOutput{
		Tasks:               st.Tasks.List(ctx),
		PersistenceDegraded: st.Tasks.PersistenceDegraded(),
	}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.Text != nil && strings.TrimSpace(*input.Text) == "" {
		return task.UpdateOutput{}, task.ErrEmptyText
	}
	if input.Quadrant != nil && !input.Quadrant.Valid() {
		return task.UpdateOutput{}, task.ErrInvalidQuadrant
	}

	st := uc.sessions.Get(ctx, sc.UserID)
	updated, err := st.Tasks.Update(ctx, input.ID, store.Patch{
		Text:        input.Text,
		Quadrant:    input.Quadrant,
		TaskType:    input.TaskType,
		Status:      input.Status,
		Description: input.Description,
		DueDate:     input.DueDate,
		GoalID:      input.GoalID,
	})
	if err != nil {
		return task.UpdateOutput{}, err
	}

	return task.UpdateOutput{Task: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	st := uc.sessions.Get(ctx, sc.UserID)
	if err := st.Tasks.Delete(ctx, id); err != nil {
		return err
	}
	st.Reasoning.Delete(ctx, id)
	return nil
}

func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (task.UpdateOutput, error) {
	st := uc.sessions.Get(ctx, sc.UserID)
	toggled, err := st.Tasks.Toggle(ctx, id)
	if err != nil {
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: toggled}, nil
}

func (uc *implUseCase) Reorder(ctx context.Context, sc model.Scope, input task.ReorderInput) error {
	st := uc.sessions.Get(ctx, sc.UserID)
	return st.Tasks.Reorder(ctx, input.Quadrant, input.SourceIndex, input.DestinationIndex)
}
