// controller/thing_controller_test.go
package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/thingsconsole/client"
	"github.com/dev-mohitbeniwal/thingsconsole/controller"
	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
	mock_service "github.com/dev-mohitbeniwal/thingsconsole/test/service_mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return r
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) client.Envelope {
	t.Helper()
	var env client.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestThingController(t *testing.T) {
	// Initialize logger
	require.NoError(t, logger.InitLogger(""))
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockThingService := mock_service.NewMockIThingService(ctrl)
	thingController := controller.NewThingController(mockThingService)
	router := setupRouter()
	api := router.Group("/")
	thingController.RegisterRoutes(api)

	t.Run("GetThing_Success", func(t *testing.T) {
		mockThingService.EXPECT().
			GetThing(gomock.Any(), "ns:device-1").
			Return(&client.Result[model.Thing]{
				Operation:  client.OpGetThing,
				StatusCode: http.StatusOK,
				Body:       model.Thing{ThingID: "ns:device-1"},
				Raw:        []byte(`{"thingId":"ns:device-1"}`),
			}, nil)

		w := serve(router, "GET", "/things/ns:device-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "getThing", env.Operation)
		assert.JSONEq(t, `{"thingId":"ns:device-1"}`, string(env.Body))
	})

	t.Run("GetThing_WithFields", func(t *testing.T) {
		mockThingService.EXPECT().
			GetThing(gomock.Any(), "ns:device-1", gomock.Any()).
			Return(&client.Result[model.Thing]{Operation: client.OpGetThing, StatusCode: http.StatusOK, Raw: []byte(`{}`)}, nil)

		w := serve(router, "GET", "/things/ns:device-1?fields=thingId", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetThing_Failure_NotFound", func(t *testing.T) {
		mockThingService.EXPECT().
			GetThing(gomock.Any(), "ns:missing").
			Return(nil, &things_errors.StatusError{Operation: client.OpGetThing, StatusCode: http.StatusNotFound, StatusText: "Not Found"})

		w := serve(router, "GET", "/things/ns:missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetThing_Failure_Transport", func(t *testing.T) {
		mockThingService.EXPECT().
			GetThing(gomock.Any(), "ns:device-1").
			Return(nil, &things_errors.TransportError{Operation: client.OpGetThing, Err: errors.New("connection refused")})

		w := serve(router, "GET", "/things/ns:device-1", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("ListThings_Success", func(t *testing.T) {
		mockThingService.EXPECT().
			ListThings(gomock.Any(), []string{"ns:a", "ns:b"}).
			Return(&client.Result[[]model.Thing]{Operation: client.OpListThings, StatusCode: http.StatusOK, Raw: []byte(`[]`)}, nil)

		w := serve(router, "GET", "/things?ids=ns:a,ns:b", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListThings_AllThings", func(t *testing.T) {
		mockThingService.EXPECT().
			ListThings(gomock.Any(), gomock.Nil()).
			Return(&client.Result[[]model.Thing]{Operation: client.OpListThings, StatusCode: http.StatusOK, Raw: []byte(`[]`)}, nil)

		w := serve(router, "GET", "/things", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SearchThings_Success", func(t *testing.T) {
		mockThingService.EXPECT().
			SearchThings(gomock.Any(), 50, 25).
			Return(&client.Result[model.SearchResult]{
				Operation:  client.OpSearchThings,
				StatusCode: http.StatusOK,
				Raw:        []byte(`{"items":[],"nextPageOffset":null}`),
			}, nil)

		w := serve(router, "GET", "/search?offset=50", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SearchThings_Failure_InvalidPagination", func(t *testing.T) {
		w := serve(router, "GET", "/search?count=abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SearchThings_Failure_Validation", func(t *testing.T) {
		mockThingService.EXPECT().
			SearchThings(gomock.Any(), -1, 25).
			Return(nil, &things_errors.ValidationError{Operation: client.OpSearchThings, Field: "offset", Err: things_errors.ErrInvalidPagination})

		w := serve(router, "GET", "/search?offset=-1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CreateThing_Success", func(t *testing.T) {
		mockThingService.EXPECT().
			CreateThing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, thing model.Thing) (*client.Result[model.Thing], error) {
				attr, ok := thing.Attribute("manufacturer")
				require.True(t, ok)
				assert.Equal(t, `"ACME"`, attr.String())
				return &client.Result[model.Thing]{
					Operation:  client.OpCreateThing,
					StatusCode: http.StatusCreated,
					Location:   "/cr/1/things/fake:thing-1",
					Raw:        []byte(`{"thingId":"fake:thing-1"}`),
				}, nil
			})

		w := serve(router, "POST", "/things", `{"attributes":{"manufacturer":"ACME"}}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/cr/1/things/fake:thing-1", decodeEnvelope(t, w).Location)
	})

	t.Run("CreateThing_Failure_InvalidBody", func(t *testing.T) {
		w := serve(router, "POST", "/things", `{"attributes":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ReplaceThing_Created", func(t *testing.T) {
		mockThingService.EXPECT().
			ReplaceThing(gomock.Any(), "ns:device-1", gomock.Any()).
			Return(&client.Result[model.Thing]{Operation: client.OpReplaceThing, StatusCode: http.StatusCreated, Raw: []byte(`{"thingId":"ns:device-1"}`)}, nil)

		w := serve(router, "PUT", "/things/ns:device-1", `{"thingId":"ns:device-1"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("ReplaceThing_Updated", func(t *testing.T) {
		mockThingService.EXPECT().
			ReplaceThing(gomock.Any(), "ns:device-1", gomock.Any()).
			Return(&client.Result[model.Thing]{Operation: client.OpReplaceThing, StatusCode: http.StatusNoContent}, nil)

		w := serve(router, "PUT", "/things/ns:device-1", `{"thingId":"ns:device-1"}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("DeleteThing_Success", func(t *testing.T) {
		mockThingService.EXPECT().
			DeleteThing(gomock.Any(), "ns:device-1").
			Return(&client.Result[client.NoContent]{Operation: client.OpDeleteThing, StatusCode: http.StatusNoContent}, nil)

		w := serve(router, "DELETE", "/things/ns:device-1", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("GetAttributes_Success", func(t *testing.T) {
		mockThingService.EXPECT().
			GetAttributes(gomock.Any(), "ns:device-1").
			Return(&client.Result[model.Value]{Operation: client.OpGetAttributes, StatusCode: http.StatusOK, Raw: []byte(`{"a":1}`)}, nil)

		w := serve(router, "GET", "/things/ns:device-1/attributes", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"a":1}`, string(decodeEnvelope(t, w).Body))
	})

	t.Run("GetAttribute_Success", func(t *testing.T) {
		mockThingService.EXPECT().
			GetAttribute(gomock.Any(), "ns:device-1", "location/latitude").
			Return(&client.Result[model.Value]{Operation: client.OpGetAttribute, StatusCode: http.StatusOK, Raw: []byte(`48.1`)}, nil)

		w := serve(router, "GET", "/things/ns:device-1/attributes/location/latitude", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("PutAttribute_Success", func(t *testing.T) {
		mockThingService.EXPECT().
			PutAttribute(gomock.Any(), "ns:device-1", "manufacturer", model.String("ACME")).
			Return(&client.Result[model.Value]{Operation: client.OpPutAttribute, StatusCode: http.StatusCreated}, nil)

		w := serve(router, "PUT", "/things/ns:device-1/attributes/manufacturer", `"ACME"`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("PutAttributes_Failure_InvalidBody", func(t *testing.T) {
		w := serve(router, "PUT", "/things/ns:device-1/attributes", `{`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteAttribute_Failure_NotFound", func(t *testing.T) {
		mockThingService.EXPECT().
			DeleteAttribute(gomock.Any(), "ns:device-1", "missing").
			Return(nil, &things_errors.StatusError{Operation: client.OpDeleteAttribute, StatusCode: http.StatusNotFound})

		w := serve(router, "DELETE", "/things/ns:device-1/attributes/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
