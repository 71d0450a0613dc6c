package idea

import "eisenhower-task-management/internal/model"

// CreateInput adds an entry to the Ideas Bank.
type CreateInput struct {
	Text                string
	TaskType            model.TaskType
	ConnectedToPriority bool
}

// CreateOutput carries the stored idea.
type CreateOutput struct {
	Idea model.Idea
}

// UpdateInput is a partial-field patch for an idea.
type UpdateInput struct {
	ID                  string
	Text                *string
	ConnectedToPriority *bool
}

// UpdateOutput carries the idea after a mutation.
type UpdateOutput struct {
	Idea model.Idea
}

// ListOutput is the Ideas Bank, newest first.
type ListOutput struct {
	Ideas []model.Idea
}

// ConvertInput promotes an idea back into the task collection. Quadrant
// defaults to the provisional quadrant when empty.
type ConvertInput struct {
	ID       string
	Quadrant model.Quadrant
}

// ConvertOutput carries the task created from the idea.
type ConvertOutput struct {
	Task model.Task
}
