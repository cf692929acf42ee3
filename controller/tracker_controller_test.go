// controller/tracker_controller_test.go
package controller_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/thingsconsole/client"
	"github.com/dev-mohitbeniwal/thingsconsole/controller"
	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
	mock_service "github.com/dev-mohitbeniwal/thingsconsole/test/service_mock"
)

func TestTrackerController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mock_service.NewMockITrackerService(ctrl)
	router := setupRouter()
	api := router.Group("/")
	api.Use(func(c *gin.Context) { c.Set(gin.AuthUserKey, "alice") })
	controller.NewTrackerController(mockTracker).RegisterRoutes(api)

	t.Run("GetTracker_Failure_NotRegistered", func(t *testing.T) {
		mockTracker.EXPECT().ThingID().Return("")

		w := serve(router, "GET", "/tracker", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Register_ConsoleUser", func(t *testing.T) {
		mockTracker.EXPECT().
			Register(gomock.Any(), "alice").
			Return(&service.Registration{Thing: model.Thing{ThingID: service.TrackerThingID("alice")}, Created: true}, nil)

		w := serve(router, "POST", "/tracker/register", "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "track.my.phone:device-of-alice")
	})

	t.Run("Register_NamedUser", func(t *testing.T) {
		mockTracker.EXPECT().
			Register(gomock.Any(), "bob").
			Return(&service.Registration{Thing: model.Thing{ThingID: service.TrackerThingID("bob")}}, nil)

		w := serve(router, "POST", "/tracker/register", `{"user":"bob"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetTracker_Success", func(t *testing.T) {
		mockTracker.EXPECT().ThingID().Return("track.my.phone:device-of-alice")

		w := serve(router, "GET", "/tracker", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"thingId":"track.my.phone:device-of-alice"}`, w.Body.String())
	})

	t.Run("UpdateGeolocation_Throttled", func(t *testing.T) {
		mockTracker.EXPECT().
			UpdateGeolocation(gomock.Any(), service.Geolocation{Position: model.Geoposition{Latitude: 48.1, Longitude: 11.5}}).
			Return(false, nil)

		w := serve(router, "POST", "/tracker/geolocation", `{"position":{"latitude":48.1,"longitude":11.5}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"pushed":false}`, w.Body.String())
	})

	t.Run("UpdateOrientation_Success", func(t *testing.T) {
		mockTracker.EXPECT().
			UpdateOrientation(gomock.Any(), service.Orientation{X: 1, Y: 2, Z: 3}).
			Return(true, nil)

		w := serve(router, "POST", "/tracker/orientation", `{"x":1,"y":2,"z":3}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"pushed":true}`, w.Body.String())
	})

	t.Run("Report_Failure_Upstream", func(t *testing.T) {
		mockTracker.EXPECT().
			Report(gomock.Any(), gomock.Any()).
			Return(&things_errors.StatusError{Operation: client.OpPutProperty, StatusCode: http.StatusForbidden})

		w := serve(router, "POST", "/tracker/report", `{"orientation":{"x":0,"y":0,"z":90}}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("GrantRead_Success", func(t *testing.T) {
		mockTracker.EXPECT().GrantRead(gomock.Any(), "sid:bob").Return(nil)

		w := serve(router, "POST", "/tracker/permissions", `{"subject":"sid:bob"}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("GrantRead_Failure_MissingSubject", func(t *testing.T) {
		w := serve(router, "POST", "/tracker/permissions", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetPermissions_Success", func(t *testing.T) {
		mockTracker.EXPECT().Permissions(gomock.Any()).Return(model.ACL{"sid:bob": model.ReadOnly()}, nil)

		w := serve(router, "GET", "/tracker/permissions", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"sid:bob":{"READ":true,"WRITE":false,"ADMINISTRATE":false}}`, w.Body.String())
	})

	t.Run("Revoke_Success", func(t *testing.T) {
		mockTracker.EXPECT().Revoke(gomock.Any(), "sid:bob").Return(nil)

		w := serve(router, "DELETE", "/tracker/permissions/sid:bob", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
