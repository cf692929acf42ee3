// controller/response_log_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
	helper_util "github.com/dev-mohitbeniwal/thingsconsole/util/helper"
)

var errHistoryDisabled = errors.New("response history is not configured")

type ResponseLogController struct {
	responseLog *audit.ResponseLog
	history     audit.Service
	now         func() time.Time
}

// NewResponseLogController serves the in-memory log; history may be nil when
// no Elasticsearch archive is configured.
func NewResponseLogController(responseLog *audit.ResponseLog, history audit.Service) *ResponseLogController {
	return &ResponseLogController{
		responseLog: responseLog,
		history:     history,
		now:         time.Now,
	}
}

type responseLogView struct {
	Order    string        `json:"order"`
	Capacity int           `json:"capacity"`
	Entries  []audit.Entry `json:"entries"`
}

// RegisterRoutes registers the API routes
func (rc *ResponseLogController) RegisterRoutes(r *gin.RouterGroup) {
	responses := r.Group("/responses")
	{
		responses.GET("", rc.GetEntries)
		responses.DELETE("", rc.Clear)
		responses.GET("/history", rc.GetHistory)
	}
}

// GetEntries endpoint
func (rc *ResponseLogController) GetEntries(c *gin.Context) {
	c.JSON(http.StatusOK, responseLogView{
		Order:    rc.responseLog.Order().String(),
		Capacity: rc.responseLog.Capacity(),
		Entries:  rc.responseLog.Entries(),
	})
}

// Clear endpoint
func (rc *ResponseLogController) Clear(c *gin.Context) {
	rc.responseLog.Clear()
	c.Status(http.StatusNoContent)
}

// GetHistory endpoint
func (rc *ResponseLogController) GetHistory(c *gin.Context) {
	if rc.history == nil {
		util.RespondWithError(c, http.StatusServiceUnavailable, "Response history is not configured", errHistoryDisabled)
		return
	}
	from, to, err := helper_util.ParseTimeRange(c.Query("from"), c.Query("to"), rc.now())
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid time range", err)
		return
	}

	entries, err := rc.history.History(c, from, to, c.Query("operation"))
	if err != nil {
		if errors.Is(err, things_errors.ErrInvalidTimeRange) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid time range", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to query response history", err)
		}
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}
