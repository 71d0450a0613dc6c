package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code, produced by delivery-layer
// mapError functions and consumed by pkg/response.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewHTTPErrorf creates a new HTTPError with a formatted message.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}
