// util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code))
	c.JSON(code, gin.H{"error": message, "status": code})
}

// StatusForError picks the console status for a client error: the upstream
// status for HTTP errors, 400 for rejected arguments, 502 when the Things
// service could not be reached.
func StatusForError(err error) int {
	var statusErr *things_errors.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.StatusCode
	case errors.Is(err, things_errors.ErrValidation), errors.Is(err, things_errors.ErrInvalidTimeRange):
		return http.StatusBadRequest
	case errors.Is(err, things_errors.ErrTrackerNotRegistered):
		return http.StatusConflict
	case errors.Is(err, things_errors.ErrTransport):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// RespondWithClientError reports a failed client call with the upstream status.
func RespondWithClientError(c *gin.Context, err error) {
	RespondWithError(c, StatusForError(err), err.Error(), err)
}

// GetConsoleUser returns the user authenticated by the console's basic auth.
func GetConsoleUser(c *gin.Context) string {
	return c.GetString(gin.AuthUserKey)
}
