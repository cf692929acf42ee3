// errors/client_errors.go
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError rejects a call before anything is sent.
type ValidationError struct {
	Operation string
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Err == nil || e.Err == ErrValidation:
		return fmt.Sprintf("%s: %s must not be empty", e.Operation, e.Field)
	case e.Field == "":
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Operation, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes every ValidationError match ErrValidation, including the
// authorization model rejection.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StatusError is a response with a status code of 400 or above.
type StatusError struct {
	Operation  string
	StatusCode int
	StatusText string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %d %s", e.Operation, e.StatusCode, e.StatusText)
	}
	return fmt.Sprintf("%s: %d %s: %s", e.Operation, e.StatusCode, e.StatusText, e.Body)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	case ErrPreconditionFailed:
		return e.StatusCode == http.StatusPreconditionFailed
	case ErrServer:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// TransportError means no response was received; it carries no status.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Operation, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// StatusCode extracts the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
