package http

import (
	"eisenhower-task-management/internal/idea"
	pkgErrors "eisenhower-task-management/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(400, "invalid request body")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case idea.ErrEmptyText:
		return pkgErrors.NewHTTPError(400, "idea text must not be empty")
	case idea.ErrInvalidQuadrant:
		return pkgErrors.NewHTTPError(400, "unknown quadrant")
	case idea.ErrIdeaNotFound:
		return pkgErrors.NewHTTPError(404, "idea not found")
	default:
		return err
	}
}
