package store

import "eisenhower-task-management/internal/model"

// AddOptions holds parameters for inserting a new Task.
type AddOptions struct {
	Text            string
	Quadrant        model.Quadrant
	TaskType        model.TaskType
	Status          model.TaskStatus
	NeedsReflection bool
	Description     string
	DueDate         string
	GoalID          string
}

// Patch is a partial-field update. Nil fields are left untouched, which is
// what keeps a late classification continuation from clobbering concurrent
// user edits to other fields.
type Patch struct {
	Text            *string
	Quadrant        *model.Quadrant
	TaskType        *model.TaskType
	Status          *model.TaskStatus
	NeedsReflection *bool
	Description     *string
	DueDate         *string
	GoalID          *string
	Reflection      *model.Reflection
}
