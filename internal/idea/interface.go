package idea

import (
	"context"

	"eisenhower-task-management/internal/model"
)

// UseCase defines the business logic interface for the Ideas Bank.
type UseCase interface {
	// Create prepends an idea to the bank.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the bank, newest first.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Update merges non-nil fields into the idea.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete removes the idea.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Convert removes the idea from the bank and creates a task from its
	// text in the chosen quadrant.
	Convert(ctx context.Context, sc model.Scope, input ConvertInput) (ConvertOutput, error)
}
