package middleware

import (
	"github.com/gin-gonic/gin"

	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
)

const Realm = "Things console"

// BasicAuth guards the console with a single account. With an empty
// username the console is open and a warning is logged once.
func BasicAuth(username, password string) gin.HandlerFunc {
	if username == "" {
		logger.Warn("Console basic auth disabled: no console username configured")
		return func(c *gin.Context) { c.Next() }
	}
	return gin.BasicAuthForRealm(gin.Accounts{username: password}, Realm)
}
