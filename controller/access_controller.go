// controller/access_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

type AccessController struct {
	accessService service.IAccessService
}

func NewAccessController(accessService service.IAccessService) *AccessController {
	return &AccessController{
		accessService: accessService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AccessController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/authorization-model", ac.GetAuthorizationModel)

	acl := r.Group("/things/:thingId/acl")
	{
		acl.GET("", ac.GetACL)
		acl.PUT("", ac.PutACL)
		acl.GET("/:subject", ac.GetACLEntry)
		acl.PUT("/:subject", ac.PutACLEntry)
		acl.DELETE("/:subject", ac.DeleteACLEntry)
	}

	owner := r.Group("/things/:thingId/owner")
	{
		owner.GET("", ac.GetOwner)
		owner.PUT("", ac.PutOwner)
		owner.DELETE("", ac.DeleteOwner)
	}
}

// GetAuthorizationModel tells the console which access routes the deployment answers
func (ac *AccessController) GetAuthorizationModel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authorizationModel": ac.accessService.AuthorizationModel()})
}

func (ac *AccessController) GetACL(c *gin.Context) {
	result, err := ac.accessService.GetACL(c, c.Param("thingId"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (ac *AccessController) PutACL(c *gin.Context) {
	var acl model.ACL
	if err := c.ShouldBindJSON(&acl); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid acl data", err)
		return
	}
	result, err := ac.accessService.PutACL(c, c.Param("thingId"), acl)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (ac *AccessController) GetACLEntry(c *gin.Context) {
	result, err := ac.accessService.GetACLEntry(c, c.Param("thingId"), c.Param("subject"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (ac *AccessController) PutACLEntry(c *gin.Context) {
	var permissions model.Permissions
	if err := c.ShouldBindJSON(&permissions); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid permissions data", err)
		return
	}
	result, err := ac.accessService.PutACLEntry(c, c.Param("thingId"), c.Param("subject"), permissions)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (ac *AccessController) DeleteACLEntry(c *gin.Context) {
	result, err := ac.accessService.DeleteACLEntry(c, c.Param("thingId"), c.Param("subject"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (ac *AccessController) GetOwner(c *gin.Context) {
	result, err := ac.accessService.GetOwner(c, c.Param("thingId"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

// PutOwner endpoint; the body is the owner id as a JSON string
func (ac *AccessController) PutOwner(c *gin.Context) {
	var owner string
	if err := c.ShouldBindJSON(&owner); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid owner data", err)
		return
	}
	result, err := ac.accessService.PutOwner(c, c.Param("thingId"), owner)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (ac *AccessController) DeleteOwner(c *gin.Context) {
	result, err := ac.accessService.DeleteOwner(c, c.Param("thingId"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}
