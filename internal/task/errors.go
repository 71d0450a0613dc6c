package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyText       = errors.New("task text is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidQuadrant = errors.New("invalid quadrant")
	ErrInvalidIndex    = errors.New("reorder index out of range")
	ErrEmptyReflection = errors.New("reflection justification is empty")
)
