// router/router.go

package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dev-mohitbeniwal/thingsconsole/config"
	"github.com/dev-mohitbeniwal/thingsconsole/controller"
	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
	"github.com/dev-mohitbeniwal/thingsconsole/middleware"
)

// SetupRouter wires the console API. Rate limiting needs Redis and is skipped
// when rdb is nil.
func SetupRouter(
	controllers *controller.Controllers,
	rdb redis.Cmdable,
	console config.ConsoleConfiguration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	controllers.Health.RegisterRoutes(router)

	api := router.Group("/api/v1")
	api.Use(middleware.BasicAuth(console.Username, console.Password))
	if rdb != nil {
		api.Use(middleware.RateLimiter(rdb, console.RateLimit, console.RateLimitWindow))
	} else if console.RateLimit > 0 {
		logger.Warn("Redis is not configured, console rate limiting disabled")
	}

	controllers.RegisterRoutes(api)

	return router
}
