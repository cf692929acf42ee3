// controller/thing_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
	helper_util "github.com/dev-mohitbeniwal/thingsconsole/util/helper"
)

// DefaultSearchCount is the page size used when a search names none.
const DefaultSearchCount = 25

type ThingController struct {
	thingService service.IThingService
}

func NewThingController(thingService service.IThingService) *ThingController {
	return &ThingController{
		thingService: thingService,
	}
}

// RegisterRoutes registers the API routes
func (tc *ThingController) RegisterRoutes(r *gin.RouterGroup) {
	things := r.Group("/things")
	{
		things.GET("", tc.ListThings)
		things.POST("", tc.CreateThing)
		things.GET("/:thingId", tc.GetThing)
		things.PUT("/:thingId", tc.ReplaceThing)
		things.DELETE("/:thingId", tc.DeleteThing)

		things.GET("/:thingId/attributes", tc.GetAttributes)
		things.PUT("/:thingId/attributes", tc.PutAttributes)
		things.DELETE("/:thingId/attributes", tc.DeleteAttributes)
		things.GET("/:thingId/attributes/*path", tc.GetAttribute)
		things.PUT("/:thingId/attributes/*path", tc.PutAttribute)
		things.DELETE("/:thingId/attributes/*path", tc.DeleteAttribute)
	}
	r.GET("/search", tc.SearchThings)
}

// ListThings endpoint; without ids every visible thing is listed
func (tc *ThingController) ListThings(c *gin.Context) {
	ids, _ := helper_util.GetListParam(c, "ids")
	result, err := tc.thingService.ListThings(c, ids, queryOptions(c)...)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

// SearchThings endpoint
func (tc *ThingController) SearchThings(c *gin.Context) {
	offset, count, err := helper_util.GetPaginationParams(c, DefaultSearchCount)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	result, err := tc.thingService.SearchThings(c, offset, count, queryOptions(c)...)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

// CreateThing endpoint; the service picks the id
func (tc *ThingController) CreateThing(c *gin.Context) {
	var thing model.Thing
	if err := c.ShouldBindJSON(&thing); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid thing data", err)
		return
	}
	result, err := tc.thingService.CreateThing(c, thing)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

// GetThing endpoint
func (tc *ThingController) GetThing(c *gin.Context) {
	result, err := tc.thingService.GetThing(c, c.Param("thingId"), queryOptions(c)...)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

// ReplaceThing endpoint
func (tc *ThingController) ReplaceThing(c *gin.Context) {
	var thing model.Thing
	if err := c.ShouldBindJSON(&thing); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid thing data", err)
		return
	}
	result, err := tc.thingService.ReplaceThing(c, c.Param("thingId"), thing)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

// DeleteThing endpoint
func (tc *ThingController) DeleteThing(c *gin.Context) {
	result, err := tc.thingService.DeleteThing(c, c.Param("thingId"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (tc *ThingController) GetAttributes(c *gin.Context) {
	result, err := tc.thingService.GetAttributes(c, c.Param("thingId"), queryOptions(c)...)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (tc *ThingController) PutAttributes(c *gin.Context) {
	attributes, ok := bindValue(c)
	if !ok {
		return
	}
	result, err := tc.thingService.PutAttributes(c, c.Param("thingId"), attributes)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (tc *ThingController) DeleteAttributes(c *gin.Context) {
	result, err := tc.thingService.DeleteAttributes(c, c.Param("thingId"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

// GetAttribute endpoint; a bare trailing slash reads all attributes
func (tc *ThingController) GetAttribute(c *gin.Context) {
	path := pathParam(c, "path")
	if path == "" {
		tc.GetAttributes(c)
		return
	}
	result, err := tc.thingService.GetAttribute(c, c.Param("thingId"), path)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (tc *ThingController) PutAttribute(c *gin.Context) {
	path := pathParam(c, "path")
	if path == "" {
		tc.PutAttributes(c)
		return
	}
	value, ok := bindValue(c)
	if !ok {
		return
	}
	result, err := tc.thingService.PutAttribute(c, c.Param("thingId"), path, value)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (tc *ThingController) DeleteAttribute(c *gin.Context) {
	path := pathParam(c, "path")
	if path == "" {
		tc.DeleteAttributes(c)
		return
	}
	result, err := tc.thingService.DeleteAttribute(c, c.Param("thingId"), path)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}
