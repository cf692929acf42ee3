// controller/health_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
)

type HealthController struct {
	inventory   service.IInventory
	responseLog *audit.ResponseLog
}

func NewHealthController(inventory service.IInventory, responseLog *audit.ResponseLog) *HealthController {
	return &HealthController{inventory: inventory, responseLog: responseLog}
}

// RegisterRoutes registers the unauthenticated health route
func (hc *HealthController) RegisterRoutes(r gin.IRoutes) {
	r.GET("/healthz", hc.Health)
}

func (hc *HealthController) Health(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if hc.inventory != nil {
		body["polling"] = hc.inventory.Running()
	}
	if hc.responseLog != nil {
		body["responses"] = hc.responseLog.Len()
	}
	c.JSON(http.StatusOK, body)
}
