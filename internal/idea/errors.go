package idea

import "errors"

var (
	ErrEmptyText       = errors.New("idea text must not be empty")
	ErrIdeaNotFound    = errors.New("idea not found")
	ErrInvalidQuadrant = errors.New("invalid quadrant")
)
