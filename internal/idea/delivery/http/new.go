package http

import (
	"eisenhower-task-management/internal/idea"
	"eisenhower-task-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc idea.UseCase
}

// New creates a new HTTP handler for the Ideas Bank.
func New(l log.Logger, uc idea.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
