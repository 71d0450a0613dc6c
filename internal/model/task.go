package model

import "time"

// Quadrant is one of the four Eisenhower Matrix buckets, crossing urgency
// and importance.
type Quadrant string

const (
	QuadrantQ1 Quadrant = "q1" // urgent & important
	QuadrantQ2 Quadrant = "q2" // not urgent & important
	QuadrantQ3 Quadrant = "q3" // urgent & not important
	QuadrantQ4 Quadrant = "q4" // not urgent & not important

	// DefaultQuadrant is where AI-assisted tasks land before classification.
	DefaultQuadrant = QuadrantQ4
)

// Valid reports whether q is a known quadrant.
func (q Quadrant) Valid() bool {
	switch q {
	case QuadrantQ1, QuadrantQ2, QuadrantQ3, QuadrantQ4:
		return true
	}
	return false
}

// TaskType categorizes a task. The "idea" tag is only produced at the
// classification boundary and never stored on a Task.
type TaskType string

const (
	TaskTypePersonal TaskType = "personal"
	TaskTypeWork     TaskType = "work"
	TaskTypeBusiness TaskType = "business"
	TaskTypeIdea     TaskType = "idea"
)

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	StatusActive    TaskStatus = "active"
	StatusCompleted TaskStatus = "completed"
)

// Task is a single task belonging to exactly one quadrant.
type Task struct {
	ID              string      `json:"id" validate:"required"`
	Text            string      `json:"text" validate:"required"`
	Quadrant        Quadrant    `json:"quadrant" validate:"required,oneof=q1 q2 q3 q4"`
	TaskType        TaskType    `json:"task_type,omitempty" validate:"omitempty,oneof=personal work business"`
	Status          TaskStatus  `json:"status" validate:"omitempty,oneof=active completed"`
	NeedsReflection bool        `json:"needs_reflection"`
	Order           int         `json:"order"`
	Description     string      `json:"description,omitempty"`
	DueDate         string      `json:"due_date,omitempty"`
	GoalID          string      `json:"goal_id,omitempty"`
	Reflection      *Reflection `json:"reflection,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
}

// Completed reports whether the task is in the completed state.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// Reflection is a user-supplied justification for a task's placement,
// used to re-derive its final quadrant.
type Reflection struct {
	Justification     string    `json:"justification"`
	SuggestedQuadrant Quadrant  `json:"suggested_quadrant"`
	FinalQuadrant     Quadrant  `json:"final_quadrant"`
	ReflectedAt       time.Time `json:"reflected_at"`
}
