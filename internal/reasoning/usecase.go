package reasoning

import (
	"context"

	"eisenhower-task-management/internal/model"
)

// UseCase exposes the reasoning log to the delivery layer.
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.ReasoningEntry, error)
	Delete(ctx context.Context, sc model.Scope, taskID string) error
	Clear(ctx context.Context, sc model.Scope) error
}
