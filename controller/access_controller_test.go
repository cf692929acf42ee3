// controller/access_controller_test.go
package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/thingsconsole/client"
	"github.com/dev-mohitbeniwal/thingsconsole/controller"
	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
	mock_service "github.com/dev-mohitbeniwal/thingsconsole/test/service_mock"
)

func TestAccessController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccessService := mock_service.NewMockIAccessService(ctrl)
	router := setupRouter()
	controller.NewAccessController(mockAccessService).RegisterRoutes(router.Group("/"))

	t.Run("GetAuthorizationModel_Success", func(t *testing.T) {
		mockAccessService.EXPECT().AuthorizationModel().Return(model.AuthorizationOwner)

		w := serve(router, "GET", "/authorization-model", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authorizationModel":"owner"}`, w.Body.String())
	})

	t.Run("PutACLEntry_Success", func(t *testing.T) {
		mockAccessService.EXPECT().
			PutACLEntry(gomock.Any(), "ns:device-1", "sid:alice", model.Permissions{Read: true, Write: true}).
			Return(&client.Result[model.Permissions]{Operation: client.OpPutACLEntry, StatusCode: http.StatusCreated}, nil)

		w := serve(router, "PUT", "/things/ns:device-1/acl/sid:alice", `{"READ":true,"WRITE":true,"ADMINISTRATE":false}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("PutACLEntry_Failure_InvalidBody", func(t *testing.T) {
		w := serve(router, "PUT", "/things/ns:device-1/acl/sid:alice", `{"READ":"yes"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetACL_Failure_WrongModel", func(t *testing.T) {
		mockAccessService.EXPECT().
			GetACL(gomock.Any(), "ns:device-1").
			Return(nil, &things_errors.ValidationError{
				Operation: client.OpGetACL,
				Field:     "authorizationModel",
				Err:       things_errors.ErrUnsupportedAuthorizationModel,
			})

		w := serve(router, "GET", "/things/ns:device-1/acl", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PutACL_Success", func(t *testing.T) {
		mockAccessService.EXPECT().
			PutACL(gomock.Any(), "ns:device-1", model.ACL{"sid:alice": model.AllPermissions()}).
			Return(&client.Result[model.ACL]{Operation: client.OpPutACL, StatusCode: http.StatusNoContent}, nil)

		w := serve(router, "PUT", "/things/ns:device-1/acl", `{"sid:alice":{"READ":true,"WRITE":true,"ADMINISTRATE":true}}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("DeleteACLEntry_Failure_NotFound", func(t *testing.T) {
		mockAccessService.EXPECT().
			DeleteACLEntry(gomock.Any(), "ns:device-1", "sid:bob").
			Return(nil, &things_errors.StatusError{Operation: client.OpDeleteACLEntry, StatusCode: http.StatusNotFound})

		w := serve(router, "DELETE", "/things/ns:device-1/acl/sid:bob", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("PutOwner_Success", func(t *testing.T) {
		mockAccessService.EXPECT().
			PutOwner(gomock.Any(), "ns:device-1", "sid:alice").
			Return(&client.Result[string]{Operation: client.OpPutOwner, StatusCode: http.StatusNoContent}, nil)

		w := serve(router, "PUT", "/things/ns:device-1/owner", `"sid:alice"`)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("GetOwner_Success", func(t *testing.T) {
		mockAccessService.EXPECT().
			GetOwner(gomock.Any(), "ns:device-1").
			Return(&client.Result[string]{Operation: client.OpGetOwner, StatusCode: http.StatusOK, Body: "sid:alice", Raw: []byte(`"sid:alice"`)}, nil)

		w := serve(router, "GET", "/things/ns:device-1/owner", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"sid:alice"`, string(decodeEnvelope(t, w).Body))
	})

	t.Run("DeleteOwner_Success", func(t *testing.T) {
		mockAccessService.EXPECT().
			DeleteOwner(gomock.Any(), "ns:device-1").
			Return(&client.Result[client.NoContent]{Operation: client.OpDeleteOwner, StatusCode: http.StatusNoContent}, nil)

		w := serve(router, "DELETE", "/things/ns:device-1/owner", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
