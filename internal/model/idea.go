package model

import "time"

// Idea is an entry in the Ideas Bank: task text recognized as a
// non-actionable idea rather than a task.
type Idea struct {
	ID                  string    `json:"id" validate:"required"`
	Text                string    `json:"text" validate:"required"`
	TaskType            TaskType  `json:"task_type,omitempty"`
	ConnectedToPriority bool      `json:"connected_to_priority"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
