package model

import "time"

// ReasoningEntry is one audit record of an AI classification output.
// At most one live entry exists per task id.
type ReasoningEntry struct {
	TaskID            string    `json:"task_id" validate:"required"`
	SuggestedQuadrant Quadrant  `json:"suggested_quadrant"`
	TaskType          TaskType  `json:"task_type"`
	Reasoning         string    `json:"reasoning"`
	AlignmentScore    int       `json:"alignment_score"`
	UrgencyScore      int       `json:"urgency_score"`
	ImportanceScore   int       `json:"importance_score"`
	Timestamp         time.Time `json:"timestamp"`
}
