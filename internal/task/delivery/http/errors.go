package http

import (
	"eisenhower-task-management/internal/task"
	pkgErrors "eisenhower-task-management/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(400, "invalid request body")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyText:
		return pkgErrors.NewHTTPError(400, "task text must not be empty")
	case task.ErrInvalidQuadrant:
		return pkgErrors.NewHTTPError(400, "unknown quadrant")
	case task.ErrInvalidIndex:
		return pkgErrors.NewHTTPError(400, "reorder index out of range")
	case task.ErrEmptyReflection:
		return pkgErrors.NewHTTPError(400, "reflection justification must not be empty")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return err
	}
}
