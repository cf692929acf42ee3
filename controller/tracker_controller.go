// controller/tracker_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

type TrackerController struct {
	trackerService service.ITrackerService
}

func NewTrackerController(trackerService service.ITrackerService) *TrackerController {
	return &TrackerController{
		trackerService: trackerService,
	}
}

type registerRequest struct {
	User string `json:"user"`
}

type grantRequest struct {
	Subject string `json:"subject" binding:"required"`
}

// RegisterRoutes registers the API routes
func (tc *TrackerController) RegisterRoutes(r *gin.RouterGroup) {
	tracker := r.Group("/tracker")
	{
		tracker.GET("", tc.GetTracker)
		tracker.POST("/register", tc.Register)
		tracker.POST("/geolocation", tc.UpdateGeolocation)
		tracker.POST("/orientation", tc.UpdateOrientation)
		tracker.POST("/report", tc.Report)
		tracker.GET("/permissions", tc.GetPermissions)
		tracker.POST("/permissions", tc.GrantRead)
		tracker.DELETE("/permissions/:subject", tc.Revoke)
	}
}

func (tc *TrackerController) GetTracker(c *gin.Context) {
	thingID := tc.trackerService.ThingID()
	if thingID == "" {
		util.RespondWithClientError(c, things_errors.ErrTrackerNotRegistered)
		return
	}
	c.JSON(http.StatusOK, gin.H{"thingId": thingID})
}

// Register endpoint; the console user is tracked unless the body names another
func (tc *TrackerController) Register(c *gin.Context) {
	var req registerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", err)
			return
		}
	}
	user := strings.TrimSpace(req.User)
	if user == "" {
		user = util.GetConsoleUser(c)
	}

	reg, err := tc.trackerService.Register(c, user)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	status := http.StatusOK
	if reg.Created {
		status = http.StatusCreated
	}
	c.JSON(status, reg)
}

func (tc *TrackerController) UpdateGeolocation(c *gin.Context) {
	var geo service.Geolocation
	if err := c.ShouldBindJSON(&geo); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid geolocation data", err)
		return
	}
	pushed, err := tc.trackerService.UpdateGeolocation(c, geo)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pushed": pushed})
}

func (tc *TrackerController) UpdateOrientation(c *gin.Context) {
	var o service.Orientation
	if err := c.ShouldBindJSON(&o); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid orientation data", err)
		return
	}
	pushed, err := tc.trackerService.UpdateOrientation(c, o)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pushed": pushed})
}

func (tc *TrackerController) Report(c *gin.Context) {
	var report service.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid report data", err)
		return
	}
	if err := tc.trackerService.Report(c, report); err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (tc *TrackerController) GetPermissions(c *gin.Context) {
	acl, err := tc.trackerService.Permissions(c)
	if err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, acl)
}

// GrantRead endpoint
func (tc *TrackerController) GrantRead(c *gin.Context) {
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid grant data", err)
		return
	}
	if err := tc.trackerService.GrantRead(c, req.Subject); err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Revoke endpoint
func (tc *TrackerController) Revoke(c *gin.Context) {
	if err := tc.trackerService.Revoke(c, c.Param("subject")); err != nil {
		util.RespondWithClientError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
