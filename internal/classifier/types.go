package classifier

import "eisenhower-task-management/internal/model"

// Input is the task text and context sent to the classification service.
type Input struct {
	TaskText        string
	Justification   string
	UserGoal        string
	UserPriority    string
	CurrentQuadrant model.Quadrant
}

// Result is the normalized classification outcome. It is a tagged union:
// when IsIdea is true only TaskType, ConnectedToPriority and Reasoning are
// meaningful; otherwise the quadrant, type and scores are set and valid.
type Result struct {
	IsIdea              bool
	SuggestedQuadrant   model.Quadrant
	TaskType            model.TaskType
	ConnectedToPriority bool
	Reasoning           string
	AlignmentScore      int
	UrgencyScore        int
	ImportanceScore     int

	// Fallback is true when the result was degraded because of a transport
	// or parse failure. Callers treat it like any other classification.
	Fallback bool
}

// rawResult mirrors the JSON shape the model is asked to return. Pointer
// fields distinguish absent from zero so malformed output can be coerced.
type rawResult struct {
	IsIdea              bool     `json:"isIdea"`
	SuggestedQuadrant   string   `json:"suggestedQuadrant"`
	TaskType            string   `json:"taskType"`
	ConnectedToPriority bool     `json:"connectedToPriority"`
	Reasoning           string   `json:"reasoning"`
	AlignmentScore      *float64 `json:"alignmentScore"`
	UrgencyScore        *float64 `json:"urgencyScore"`
	ImportanceScore     *float64 `json:"importanceScore"`
}
