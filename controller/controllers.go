// controller/controllers.go
package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/thingsconsole/client"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
	helper_util "github.com/dev-mohitbeniwal/thingsconsole/util/helper"
)

type Controllers struct {
	Thing       *ThingController
	Feature     *FeatureController
	Access      *AccessController
	ResponseLog *ResponseLogController
	Inventory   *InventoryController
	Tracker     *TrackerController
	Health      *HealthController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Thing:       NewThingController(services.Things),
		Feature:     NewFeatureController(services.Features),
		Access:      NewAccessController(services.Access),
		ResponseLog: NewResponseLogController(services.ResponseLog, services.History),
		Inventory:   NewInventoryController(services.Inventory),
		Tracker:     NewTrackerController(services.Tracker),
		Health:      NewHealthController(services.Inventory, services.ResponseLog),
	}
}

// RegisterRoutes registers every console route on the API group.
func (cs *Controllers) RegisterRoutes(r *gin.RouterGroup) {
	cs.Thing.RegisterRoutes(r)
	cs.Feature.RegisterRoutes(r)
	cs.Access.RegisterRoutes(r)
	cs.ResponseLog.RegisterRoutes(r)
	cs.Inventory.RegisterRoutes(r)
	cs.Tracker.RegisterRoutes(r)
}

// respond serves a client result with the upstream status, so a 201 from a
// PUT stays distinguishable from a 204.
func respond[T any](c *gin.Context, result *client.Result[T]) {
	c.JSON(result.StatusCode, result.Envelope())
}

// queryOptions maps the console's fields and filter parameters onto the
// client's query options.
func queryOptions(c *gin.Context) []client.QueryOption {
	var opts []client.QueryOption
	if fields, ok := helper_util.GetListParam(c, "fields"); ok {
		opts = append(opts, client.WithFields(fields...))
	}
	if filter := c.Query("filter"); filter != "" {
		opts = append(opts, client.WithFilter(filter))
	}
	return opts
}

// bindValue reads an arbitrary JSON request body.
func bindValue(c *gin.Context) (model.Value, bool) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Failed to read request body", err)
		return model.Value{}, false
	}
	v, err := model.Parse(data)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid JSON body", err)
		return model.Value{}, false
	}
	return v, true
}

// pathParam returns a catch-all parameter without its leading slash.
func pathParam(c *gin.Context, name string) string {
	p := c.Param(name)
	for len(p) > 0 && p[0] == '/' {
		p = p[1:]
	}
	return p
}
