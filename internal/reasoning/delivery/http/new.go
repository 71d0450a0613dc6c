package http

import (
	"eisenhower-task-management/internal/reasoning"
	"eisenhower-task-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc reasoning.UseCase
}

// New creates a new HTTP handler for the reasoning log.
func New(l log.Logger, uc reasoning.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
