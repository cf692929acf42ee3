// controller/feature_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

type FeatureController struct {
	featureService service.IFeatureService
}

func NewFeatureController(featureService service.IFeatureService) *FeatureController {
	return &FeatureController{
		featureService: featureService,
	}
}

// RegisterRoutes registers the API routes
func (fc *FeatureController) RegisterRoutes(r *gin.RouterGroup) {
	features := r.Group("/things/:thingId/features")
	{
		features.GET("", fc.GetFeatures)
		features.PUT("", fc.PutFeatures)
		features.DELETE("", fc.DeleteFeatures)
		features.GET("/:featureId", fc.GetFeature)
		features.PUT("/:featureId", fc.PutFeature)
		features.DELETE("/:featureId", fc.DeleteFeature)

		features.GET("/:featureId/properties", fc.GetProperties)
		features.PUT("/:featureId/properties", fc.PutProperties)
		features.DELETE("/:featureId/properties", fc.DeleteProperties)
		features.GET("/:featureId/properties/*pointer", fc.GetProperty)
		features.PUT("/:featureId/properties/*pointer", fc.PutProperty)
		features.DELETE("/:featureId/properties/*pointer", fc.DeleteProperty)
	}
}

func (fc *FeatureController) GetFeatures(c *gin.Context) {
	result, err := fc.featureService.GetFeatures(c, c.Param("thingId"), queryOptions(c)...)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) PutFeatures(c *gin.Context) {
	var features model.Features
	if err := c.ShouldBindJSON(&features); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid features data", err)
		return
	}
	result, err := fc.featureService.PutFeatures(c, c.Param("thingId"), features)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) DeleteFeatures(c *gin.Context) {
	result, err := fc.featureService.DeleteFeatures(c, c.Param("thingId"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) GetFeature(c *gin.Context) {
	result, err := fc.featureService.GetFeature(c, c.Param("thingId"), c.Param("featureId"), queryOptions(c)...)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) PutFeature(c *gin.Context) {
	var feature model.Feature
	if err := c.ShouldBindJSON(&feature); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid feature data", err)
		return
	}
	result, err := fc.featureService.PutFeature(c, c.Param("thingId"), c.Param("featureId"), feature)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) DeleteFeature(c *gin.Context) {
	result, err := fc.featureService.DeleteFeature(c, c.Param("thingId"), c.Param("featureId"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) GetProperties(c *gin.Context) {
	result, err := fc.featureService.GetProperties(c, c.Param("thingId"), c.Param("featureId"), queryOptions(c)...)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) PutProperties(c *gin.Context) {
	properties, ok := bindValue(c)
	if !ok {
		return
	}
	result, err := fc.featureService.PutProperties(c, c.Param("thingId"), c.Param("featureId"), properties)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) DeleteProperties(c *gin.Context) {
	result, err := fc.featureService.DeleteProperties(c, c.Param("thingId"), c.Param("featureId"))
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

// GetProperty endpoint; the pointer is the slash-separated remainder of the path
func (fc *FeatureController) GetProperty(c *gin.Context) {
	pointer := pathParam(c, "pointer")
	if pointer == "" {
		fc.GetProperties(c)
		return
	}
	result, err := fc.featureService.GetProperty(c, c.Param("thingId"), c.Param("featureId"), pointer)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) PutProperty(c *gin.Context) {
	pointer := pathParam(c, "pointer")
	if pointer == "" {
		fc.PutProperties(c)
		return
	}
	value, ok := bindValue(c)
	if !ok {
		return
	}
	result, err := fc.featureService.PutProperty(c, c.Param("thingId"), c.Param("featureId"), pointer, value)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}

func (fc *FeatureController) DeleteProperty(c *gin.Context) {
	pointer := pathParam(c, "pointer")
	if pointer == "" {
		fc.DeleteProperties(c)
		return
	}
	result, err := fc.featureService.DeleteProperty(c, c.Param("thingId"), c.Param("featureId"), pointer)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	respond(c, result)
}
