package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
	"github.com/dev-mohitbeniwal/thingsconsole/config"
	"github.com/dev-mohitbeniwal/thingsconsole/controller"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/router"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
	"github.com/dev-mohitbeniwal/thingsconsole/test/fakethings"
)

func newConsole(t *testing.T, rdb redis.Cmdable, rateLimit int) (*gin.Engine, *audit.ResponseLog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := fakethings.New()
	t.Cleanup(srv.Close)
	srv.Seed(model.Thing{ThingID: "ns:device-1"})

	cfg := &config.Configuration{
		Things: config.ThingsConfiguration{BaseURL: srv.URL, AuthorizationModel: "acl"},
		Poll:   config.PollConfiguration{Interval: time.Hour, PageSize: 10},
	}
	responseLog := audit.NewResponseLog()
	services, err := service.InitializeServices(cfg, responseLog, nil, nil)
	require.NoError(t, err)

	console := config.ConsoleConfiguration{
		Username:        "admin",
		Password:        "secret",
		RateLimit:       rateLimit,
		RateLimitWindow: time.Minute,
	}
	return router.SetupRouter(controller.InitializeControllers(services), rdb, console), responseLog
}

func request(engine *gin.Engine, method, target string, auth bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, nil)
	if auth {
		req.SetBasicAuth("admin", "secret")
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_HealthIsOpen(t *testing.T) {
	engine, _ := newConsole(t, nil, 0)

	w := request(engine, "GET", "/healthz", false)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRouter_RequiresBasicAuth(t *testing.T) {
	engine, responseLog := newConsole(t, nil, 0)

	w := request(engine, "GET", "/api/v1/things/ns:device-1", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, responseLog.Len())

	w = request(engine, "GET", "/api/v1/things/ns:device-1", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"operation":"getThing"`)
	assert.Equal(t, 1, responseLog.Len())
}

func TestSetupRouter_RateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	engine, _ := newConsole(t, rdb, 2)

	for i := 0; i < 2; i++ {
		w := request(engine, "GET", "/api/v1/responses", true)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := request(engine, "GET", "/api/v1/responses", true)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
