package task

import "eisenhower-task-management/internal/model"

// CreateInput creates a task directly in a chosen quadrant, bypassing AI.
type CreateInput struct {
	Text            string
	Quadrant        model.Quadrant
	TaskType        model.TaskType
	NeedsReflection bool
	Description     string
	DueDate         string
	GoalID          string
}

// CreateWithAIInput creates a task provisionally and schedules background
// classification. UserGoal and UserPriority give the classifier context.
type CreateWithAIInput struct {
	Text         string
	UserGoal     string
	UserPriority string
}

// CreateOutput is the synchronously created task. For AI-assisted creation
// this is the provisional record; classification may later move it.
type CreateOutput struct {
	Task model.Task
}

// UpdateInput is a partial-field patch. Nil fields are left untouched.
type UpdateInput struct {
	ID          string
	Text        *string
	Quadrant    *model.Quadrant
	TaskType    *model.TaskType
	Status      *model.TaskStatus
	Description *string
	DueDate     *string
	GoalID      *string
}

// UpdateOutput carries the task after a mutation.
type UpdateOutput struct {
	Task model.Task
}

// ListOutput is the user's full task collection, sorted by quadrant then order.
type ListOutput struct {
	Tasks []model.Task
	// PersistenceDegraded is true when an earlier write to the persistence
	// mirror failed; in-memory state is still authoritative.
	PersistenceDegraded bool
}

// ReorderInput moves the task at SourceIndex to DestinationIndex within
// Quadrant's order-sorted task list.
type ReorderInput struct {
	Quadrant         model.Quadrant
	SourceIndex      int
	DestinationIndex int
}

// ReflectionInput submits a justification for a task sitting in q3/q4.
// FinalQuadrant is the user's explicit choice; when empty the AI-suggested
// quadrant is applied.
type ReflectionInput struct {
	TaskID        string
	Justification string
	FinalQuadrant model.Quadrant
	UserGoal      string
	UserPriority  string
}
