// errors/thing_errors.go
package errors

import "errors"

// Errors classifying a response from the Things service. A *StatusError
// matches the sentinel for its status code with errors.Is.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("thing resource not found")
	ErrConflict           = errors.New("thing resource conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrServer             = errors.New("things service error")
)

// Errors raised before or instead of a response.
var (
	ErrValidation                    = errors.New("invalid request")
	ErrUnsupportedAuthorizationModel = errors.New("operation not supported by the configured authorization model")
	ErrTransport                     = errors.New("no response from things service")
	ErrInvalidPagination             = errors.New("invalid pagination parameters")
	ErrInvalidTimeRange              = errors.New("invalid time range")
	ErrTrackerNotRegistered          = errors.New("no thing registered for tracking")
)
