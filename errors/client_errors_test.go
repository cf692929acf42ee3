package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
)

func TestStatusError_MatchesSentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, things_errors.ErrBadRequest},
		{http.StatusUnauthorized, things_errors.ErrUnauthorized},
		{http.StatusForbidden, things_errors.ErrForbidden},
		{http.StatusNotFound, things_errors.ErrNotFound},
		{http.StatusConflict, things_errors.ErrConflict},
		{http.StatusPreconditionFailed, things_errors.ErrPreconditionFailed},
		{http.StatusServiceUnavailable, things_errors.ErrServer},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &things_errors.StatusError{Operation: "getThing", StatusCode: tt.status})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.status, things_errors.StatusCode(err))
		})
	}

	notFound := &things_errors.StatusError{Operation: "getThing", StatusCode: http.StatusNotFound}
	assert.NotErrorIs(t, notFound, things_errors.ErrServer)
	assert.NotErrorIs(t, notFound, things_errors.ErrValidation)
}

func TestStatusError_Message(t *testing.T) {
	err := &things_errors.StatusError{Operation: "deleteThing", StatusCode: 404, StatusText: "Not Found", Body: `{"status":404}`}
	assert.Equal(t, `deleteThing: 404 Not Found: {"status":404}`, err.Error())

	err.Body = ""
	assert.Equal(t, "deleteThing: 404 Not Found", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &things_errors.ValidationError{Operation: "getAcl", Field: "authorizationModel", Err: things_errors.ErrUnsupportedAuthorizationModel}
	assert.ErrorIs(t, err, things_errors.ErrValidation)
	assert.ErrorIs(t, err, things_errors.ErrUnsupportedAuthorizationModel)
	assert.Contains(t, err.Error(), "authorizationModel")
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &things_errors.TransportError{Operation: "getThing", Err: cause}
	assert.ErrorIs(t, err, things_errors.ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, things_errors.StatusCode(err))
}
