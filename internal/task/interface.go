package task

import (
	"context"

	"eisenhower-task-management/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create inserts a task directly into the given quadrant without AI.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// CreateWithAI inserts a task into the default quadrant, returns it
	// immediately, and schedules background classification that may move
	// the task or divert it to the Ideas Bank.
	CreateWithAI(ctx context.Context, sc model.Scope, input CreateWithAIInput) (CreateOutput, error)

	// List returns the user's tasks sorted by quadrant then order.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Update merges non-nil fields into the task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete removes the task.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Toggle flips a task between active and completed.
	Toggle(ctx context.Context, sc model.Scope, id string) (UpdateOutput, error)

	// Reorder moves a task within its quadrant and renumbers the quadrant.
	Reorder(ctx context.Context, sc model.Scope, input ReorderInput) error

	// SubmitReflection records a justification for a q3/q4 task and
	// re-derives its final quadrant through the classifier.
	SubmitReflection(ctx context.Context, sc model.Scope, input ReflectionInput) (UpdateOutput, error)
}
