// controller/inventory_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/thingsconsole/service"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

type InventoryController struct {
	inventory service.IInventory
}

func NewInventoryController(inventory service.IInventory) *InventoryController {
	return &InventoryController{
		inventory: inventory,
	}
}

// RegisterRoutes registers the API routes
func (ic *InventoryController) RegisterRoutes(r *gin.RouterGroup) {
	inventory := r.Group("/inventory")
	{
		inventory.GET("", ic.GetInventory)
		inventory.POST("/refresh", ic.Refresh)
	}
}

// GetInventory serves the last applied poll result
func (ic *InventoryController) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, ic.inventory.Snapshot())
}

// Refresh polls once outside the schedule
func (ic *InventoryController) Refresh(c *gin.Context) {
	if err := ic.inventory.Refresh(c); err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, ic.inventory.Snapshot())
}
